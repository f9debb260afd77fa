package storage

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rushapp/rush-bot/internal/domain/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// имя коллекции пользователей в Firestore
const usersCollection = "users"

type UserStorage interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreditReferral(ctx context.Context, referrerID, refereeID string, bonus int64, entry models.ReferralEntry) error
}

type userRepository struct {
	db *firestore.Client
}

func NewUserRepository(db *firestore.Client) *userRepository {
	return &userRepository{db: db}
}

// получение уже существующего пользователя по Telegram ID
func (r *userRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	snap, err := r.db.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user := &models.User{}
	if err := snap.DataTo(user); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}
	user.ID = snap.Ref.ID
	return user, nil
}

// CreateUser записывает нового пользователя через Create (create-if-absent):
// Firestore сам отклонит повторное создание, отдельный read-modify-write не нужен
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.Collection(usersCollection).Doc(user.ID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// CreditReferral атомарно начисляет бонус рефереру и добавляет снимок приглашённого
// в referrals. Инкремент выполняется на стороне Firestore, параллельные начисления
// от разных приглашённых не теряются.
func (r *userRepository) CreditReferral(ctx context.Context, referrerID, refereeID string, bonus int64, entry models.ReferralEntry) error {
	_, err := r.db.Collection(usersCollection).Doc(referrerID).Update(ctx, []firestore.Update{
		{Path: "balance", Value: firestore.Increment(bonus)},
		{FieldPath: firestore.FieldPath{"referrals", refereeID}, Value: entry},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
