package account_test

import (
	"testing"
	"workforce/account"
	"workforce/bizerror"
	"workforce/persistence"
	"workforce/testinfra"

	. "github.com/onsi/gomega"
)

func setup(t *testing.T, testDatabase **testinfra.TestDatabase) {
	db := testinfra.StartMysqlTestDatabase("workforce")
	*testDatabase = db
	Expect(db.DS.GormDB().AutoMigrate(&account.User{}).Error).To(BeNil())
	persistence.ActiveDataSourceManager = db.DS
}

func teardown(t *testing.T, testDatabase *testinfra.TestDatabase) {
	if testDatabase != nil {
		testinfra.StopMysqlTestDatabase(testDatabase)
	}
}

func TestCreateUser(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("should create a user with a hashed secret", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		identity, err := account.CreateUser(&account.UserCreation{Name: "ann", Password: "abc123", Nickname: "Ann"})
		Expect(err).To(BeNil())
		Expect(identity.ID).ToNot(BeZero())
		Expect(identity.Name).To(Equal("ann"))
		Expect(identity.Nickname).To(Equal("Ann"))

		user := account.User{}
		Expect(persistence.ActiveDataSourceManager.GormDB().
			Where(&account.User{Name: "ann"}).First(&user).Error).To(BeNil())
		Expect(user.Secret).To(Equal(account.HashSha256("abc123")))
		Expect(user.Secret).ToNot(Equal("abc123"))
	})

	t.Run("should fall back to the name when no nickname is given", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		identity, err := account.CreateUser(&account.UserCreation{Name: "bob", Password: "abc123"})
		Expect(err).To(BeNil())
		Expect(identity.Nickname).To(Equal("bob"))
	})

	t.Run("should reject a taken user name", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		_, err := account.CreateUser(&account.UserCreation{Name: "ann", Password: "abc123"})
		Expect(err).To(BeNil())

		identity, err := account.CreateUser(&account.UserCreation{Name: "ann", Password: "other456"})
		Expect(identity).To(BeNil())
		_, conflict := err.(*bizerror.ErrConflict)
		Expect(conflict).To(BeTrue())
	})
}
