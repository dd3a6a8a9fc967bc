package services

import (
	"testing"

	"leton/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)

	user, err := svc.CreateUser("owner@leton.test", "s3cret-pass", "Ada", "Mason")
	testutil.AssertNoError(t, err)

	if user.Password == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
	if !svc.VerifyPassword(user, "s3cret-pass") {
		t.Error("expected password to verify")
	}
	if svc.VerifyPassword(user, "wrong") {
		t.Error("expected wrong password to fail")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)

	_, err := svc.CreateUser("dup@leton.test", "s3cret-pass", "", "")
	testutil.AssertNoError(t, err)

	_, err = svc.CreateUser("dup@leton.test", "s3cret-pass", "", "")
	testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
}

func TestGetUserByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)

	_, err := svc.GetUserByEmail("ghost@leton.test")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}
