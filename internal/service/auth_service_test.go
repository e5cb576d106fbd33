// FILE: internal/service/auth_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"

	"ai-character-admin-be/internal/model"
	"ai-character-admin-be/internal/repository/unitofwork"

	sqlite "github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ai-character-admin-be/internal/dto"
)

func newAuthTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.AdminUser{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return unitofwork.NewRepositoryFactory(db), db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) uuid.UUID {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := model.AdminUser{
		Id:           uuid.New(),
		Email:        email,
		FullName:     "Console Admin",
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin.Id
}

func TestLogin_IssuesAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	factory, db := newAuthTestFactory(t)
	adminId := seedAdmin(t, db, "admin@example.com", "admin123")

	svc := NewAuthService(factory)
	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", res.Email)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, adminId.String(), claims["admin_id"])
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	factory, db := newAuthTestFactory(t)
	seedAdmin(t, db, "admin@example.com", "admin123")

	svc := NewAuthService(factory)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	factory, _ := newAuthTestFactory(t)

	svc := NewAuthService(factory)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "admin123",
	})
	assert.EqualError(t, err, "invalid credentials")
}
