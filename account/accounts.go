package account

import (
	"crypto/sha256"
	"encoding/hex"
	"workforce/bizerror"
	"workforce/common"
	"workforce/persistence"
	"workforce/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	userIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateUserFunc = CreateUser
)

type User struct {
	ID       types.ID `json:"id" gorm:"primary_key"`
	Name     string   `json:"name" gorm:"unique_index:uni_user_name"`
	Secret   string   `json:"-"`
	Nickname string   `json:"nickname"`
}

func (u *User) TableName() string {
	return "users"
}

type UserCreation struct {
	Name     string `json:"name" validate:"required" binding:"required"`
	Password string `json:"password" validate:"required,gte=6" binding:"required,gte=6"`
	Nickname string `json:"nickname"`
}

func HashSha256(raw string) string {
	h := sha256.New()
	h.Write([]byte(raw))
	return hex.EncodeToString(h.Sum(nil))
}

func CreateUser(c *UserCreation) (*session.Identity, error) {
	db := persistence.ActiveDataSourceManager.GormDB()

	nickname := c.Nickname
	if nickname == "" {
		nickname = c.Name
	}
	user := User{ID: common.NextId(userIdWorker), Name: c.Name, Secret: HashSha256(c.Password), Nickname: nickname}

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int
		if err := tx.Model(&User{}).Where(&User{Name: c.Name}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &bizerror.ErrConflict{Message: "user name is already taken"}
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &session.Identity{ID: user.ID, Name: user.Name, Nickname: user.Nickname}, nil
}
