package services

import (
	"github.com/teklifhq/offerd/internal/models"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email_already_registered")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

type UserView struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CompanyID *uint  `json:"company_id"`
}

// UserService is the identity seam: registration, credential checks and user
// removal. Everything else in the system only ever sees a user id and its
// company id.
type UserService struct{ DB *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{DB: db} }

func (s *UserService) Register(email, password, name string) (*UserView, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := models.User{Email: email, PasswordHash: string(hash), Name: name}
	if err := s.DB.Create(&u).Error; err != nil {
		return nil, err
	}
	return userView(u), nil
}

func (s *UserService) Authenticate(email, password string) (*UserView, error) {
	var u models.User
	err := s.DB.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return userView(u), nil
}

func (s *UserService) GetByID(id uint) (*UserView, error) {
	var u models.User
	err := s.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userView(u), nil
}

// Delete removes a user and cascades its authored offers (with their items)
// in one transaction. The company side is untouched.
func (s *UserService) Delete(id uint) (bool, error) {
	var u models.User
	err := s.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		offerIDs := tx.Model(&models.Offer{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("offer_id IN (?)", offerIDs).Delete(&models.OfferItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Offer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&u).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func userView(u models.User) *UserView {
	return &UserView{ID: u.ID, Email: u.Email, Name: u.Name, CompanyID: u.CompanyID}
}
