package memcache_fx

import (
	"go.uber.org/fx"
	mem "gymgate/pkg/memcache"
)

var Module = fx.Provide(provideMemberLocks)

func provideMemberLocks() mem.MemberLockStore {
	return mem.NewMemberLocks()
}
