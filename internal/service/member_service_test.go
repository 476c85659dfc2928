package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domain"
	"library-api/internal/service"
	"library-api/pkg/dbtime"
)

func uintPtr(n uint) *uint { return &n }

func Test_MemberCreate_DefaultsJoinDate(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db)
	u := seedUser(t, db, "alice")

	m, err := svc.Create(ctx, service.MemberCreateInput{
		MembershipNumber: "MEM-001",
		FirstName:        "Alice",
		LastName:         "Martin",
		Email:            "alice@example.com",
		UserID:           u.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, dbtime.Today().Format("2006-01-02"), m.JoinDate.Format("2006-01-02"))
}

func Test_MemberCreate_UserMustExist(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db)

	_, err := svc.Create(ctx, service.MemberCreateInput{
		MembershipNumber: "MEM-001",
		FirstName:        "Alice",
		LastName:         "Martin",
		Email:            "alice@example.com",
		UserID:           999,
	})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func Test_MemberCreate_Conflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db)
	u := seedUser(t, db, "alice")
	u2 := seedUser(t, db, "bob")
	seedMember(t, db, "MEM-001", u.ID)

	_, err := svc.Create(ctx, service.MemberCreateInput{
		MembershipNumber: "MEM-001",
		FirstName:        "Bob",
		LastName:         "Durand",
		Email:            "bob@example.com",
		UserID:           u2.ID,
	})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	_, err = svc.Create(ctx, service.MemberCreateInput{
		MembershipNumber: "MEM-002",
		FirstName:        "Bob",
		LastName:         "Durand",
		Email:            "MEM-001@example.com", // seedMember 用会员号拼邮箱
		UserID:           u2.ID,
	})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

func Test_MemberUpdate_Partial(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db)
	u := seedUser(t, db, "alice")
	m := seedMember(t, db, "MEM-001", u.ID)

	got, err := svc.Update(ctx, m.ID, service.MemberPatch{PhoneNumber: strPtr("0601020304")})
	require.NoError(t, err)
	assert.Equal(t, "0601020304", got.PhoneNumber)
	assert.Equal(t, m.MembershipNumber, got.MembershipNumber)
	assert.Equal(t, m.Email, got.Email)
}

func Test_MemberUpdate_UniquenessAndUser(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db)
	u := seedUser(t, db, "alice")
	u2 := seedUser(t, db, "bob")
	seedMember(t, db, "MEM-001", u.ID)
	m := seedMember(t, db, "MEM-002", u2.ID)

	_, err := svc.Update(ctx, m.ID, service.MemberPatch{MembershipNumber: strPtr("MEM-001")})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	_, err = svc.Update(ctx, m.ID, service.MemberPatch{UserID: uintPtr(999)})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	// 保持自己的会员号不算冲突
	_, err = svc.Update(ctx, m.ID, service.MemberPatch{MembershipNumber: strPtr("MEM-002")})
	assert.NoError(t, err)
}

func Test_MemberGetDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db)

	_, err := svc.Get(ctx, 999)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	err = svc.Delete(ctx, 999)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	u := seedUser(t, db, "alice")
	m := seedMember(t, db, "MEM-001", u.ID)
	require.NoError(t, svc.Delete(ctx, m.ID))
	_, err = svc.Get(ctx, m.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func Test_MemberList_Filter(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db)
	u := seedUser(t, db, "alice")
	u2 := seedUser(t, db, "bob")
	require.NoError(t, db.Create(&domain.Member{
		MembershipNumber: "MEM-001", FirstName: "Alice", LastName: "Martin",
		Email: "alice@example.com", JoinDate: dbtime.Today(), UserID: u.ID,
	}).Error)
	require.NoError(t, db.Create(&domain.Member{
		MembershipNumber: "MEM-002", FirstName: "Bob", LastName: "Durand",
		Email: "bob@example.com", JoinDate: dbtime.Today(), UserID: u2.ID,
	}).Error)

	ms, err := svc.List(ctx, domain.MemberFilter{LastName: "mart", Limit: 10})
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "Alice", ms[0].FirstName)

	// 默认按姓氏升序
	ms, err = svc.List(ctx, domain.MemberFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "Durand", ms[0].LastName)
}
