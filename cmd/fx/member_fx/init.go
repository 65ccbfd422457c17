package member_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gymgate/internal/device"
	"gymgate/internal/repositories"
	"gymgate/internal/services"
	mem "gymgate/pkg/memcache"
)

var Module = fx.Provide(
	provideMemberService, provideMemberRepo)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideMemberService(memberRepo repositories.MemberRepository, deviceClient device.Client, locks mem.MemberLockStore) services.MemberServiceInterface {
	return services.NewMemberService(memberRepo, deviceClient, locks)
}
