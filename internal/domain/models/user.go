package models

import "time"

// User представляет пользователя мини-приложения.
// Хранится в Firestore в коллекции users, ID документа — Telegram ID пользователя (строка).
// ID не пишется в поля документа, он и есть путь документа.
type User struct {
	ID                string                   `firestore:"-"`
	FirstName         string                   `firestore:"firstName"`
	LastName          string                   `firestore:"lastName"`
	Username          string                   `firestore:"username"`
	LanguageCode      string                   `firestore:"languageCode"`
	IsPremium         bool                     `firestore:"isPremium"`
	UserImage         *string                  `firestore:"userImage"`
	Balance           int64                    `firestore:"balance"`
	MineRate          float64                  `firestore:"mineRate"`
	IsMining          bool                     `firestore:"isMining"`
	MiningStartedTime *time.Time               `firestore:"miningStartedTime"`
	Daily             Daily                    `firestore:"daily"`
	Referrals         map[string]ReferralEntry `firestore:"referrals"`
	ReferredBy        string                   `firestore:"referredBy,omitempty"`
	Links             interface{}              `firestore:"links"`
}

// Daily — состояние ежедневной награды (сама логика наград живёт в мини-приложении)
type Daily struct {
	ClaimedTime *time.Time `firestore:"claimedTime"`
	ClaimedDay  int64      `firestore:"claimedDay"`
}

// ReferralEntry — одноразовый снимок приглашённого пользователя в записи реферера.
// После создания не синхронизируется с дальнейшими изменениями приглашённого.
type ReferralEntry struct {
	AddedValue int64   `firestore:"addedValue"`
	FirstName  string  `firestore:"firstName"`
	LastName   string  `firestore:"lastName"`
	UserImage  *string `firestore:"userImage"`
}

// стартовые значения экономических полей нового пользователя
const (
	InitialBalance  = 0
	InitialMineRate = 0.001
)

// NewUser создаёт запись пользователя со стартовыми значениями
func NewUser(id, firstName, lastName, username, languageCode string, isPremium bool) *User {
	return &User{
		ID:           id,
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		LanguageCode: languageCode,
		IsPremium:    isPremium,
		Balance:      InitialBalance,
		MineRate:     InitialMineRate,
		IsMining:     false,
		Referrals:    map[string]ReferralEntry{},
	}
}
