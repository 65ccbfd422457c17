package seed

import "gymgate/internal/models/db_models"

// A fixed batch of demo members, replacing the Faker-generated set of
// the desktop app. Phone numbers are drawn from the reserved fictional
// NANP range so they parse as valid without colliding with real ones.
var fakeMembers = []db_models.Member{
	{FirstName: "Alice", LastName: "Morgan", Email: "alice.morgan@example.com", CountryCode: "+1", PhoneNumber: "2025550143", Gender: "Female", MembershipType: db_models.MembershipMember, RemainingDays: 30},
	{FirstName: "Brian", LastName: "Keller", Email: "brian.keller@example.com", CountryCode: "+1", PhoneNumber: "2025550167", Gender: "Male", MembershipType: db_models.MembershipMember, RemainingDays: 31},
	{FirstName: "Carla", LastName: "Nguyen", Email: "carla.nguyen@example.com", CountryCode: "+1", PhoneNumber: "2125550180", Gender: "Female", MembershipType: db_models.MembershipNotMember, RemainingDays: 30},
	{FirstName: "Daniel", LastName: "Osei", Email: "daniel.osei@example.com", CountryCode: "+1", PhoneNumber: "3125550122", Gender: "Male", MembershipType: db_models.MembershipMember, RemainingDays: 31},
	{FirstName: "Elena", LastName: "Petrova", Email: "elena.petrova@example.com", CountryCode: "+1", PhoneNumber: "4155550134", Gender: "Female", MembershipType: db_models.MembershipMember, RemainingDays: 30},
	{FirstName: "Felix", LastName: "Hart", Email: "felix.hart@example.com", CountryCode: "+1", PhoneNumber: "6175550155", Gender: "Male", MembershipType: db_models.MembershipNotMember, RemainingDays: 30},
	{FirstName: "Grace", LastName: "Liu", Email: "grace.liu@example.com", CountryCode: "+1", PhoneNumber: "2065550171", Gender: "Female", MembershipType: db_models.MembershipMember, RemainingDays: 31},
	{FirstName: "Hassan", LastName: "Ali", Email: "hassan.ali@example.com", CountryCode: "+1", PhoneNumber: "3055550116", Gender: "Male", MembershipType: db_models.MembershipMember, RemainingDays: 30},
	{FirstName: "Ines", LastName: "Costa", Email: "ines.costa@example.com", CountryCode: "+1", PhoneNumber: "5035550148", Gender: "Female", MembershipType: db_models.MembershipNotMember, RemainingDays: 31},
	{FirstName: "Jonas", LastName: "Weber", Email: "jonas.weber@example.com", CountryCode: "+1", PhoneNumber: "7025550129", Gender: "Male", MembershipType: db_models.MembershipMember, RemainingDays: 30},
}
