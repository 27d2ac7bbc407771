package domain

import "time"

// Voucher — чек на звёзды. Amount == 0 означает NFT-чек: при получении
// баланс не меняется, фиксируется только факт выдачи.
type Voucher struct {
	ID        string
	IssuerID  int64
	Amount    float64
	CreatedAt time.Time
	IsGift    bool // NFT-вариант (Amount == 0)
	Inline    bool // выпущен через inline-режим
	Claim     *Claim
}

// Claim устанавливается ровно один раз; nil — чек активен.
type Claim struct {
	By int64
	At time.Time
}

func (v *Voucher) Claimed() bool { return v.Claim != nil }

type AdminRecord struct {
	ID       int64
	Username string
	AddedAt  time.Time
}

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusApproved VerificationStatus = "approved"
	StatusRejected VerificationStatus = "rejected"
)

type VerificationSource string

const (
	SourceBot     VerificationSource = "bot"
	SourceWebsite VerificationSource = "website"
)

// VerificationRequest — заявка на верификацию. Заявки из бота несут UserID,
// заявки с сайта — IP отправителя (не аутентифицированы).
type VerificationRequest struct {
	ID        string
	UserID    int64 // 0 для заявок с сайта
	Phone     string
	Code      string
	IP        string
	Source    VerificationSource
	CreatedAt time.Time
	Decision  *Decision
}

// Decision устанавливается ровно один раз; nil — заявка в ожидании.
type Decision struct {
	By       int64
	At       time.Time
	Approved bool
}

func (r *VerificationRequest) Status() VerificationStatus {
	switch {
	case r.Decision == nil:
		return StatusPending
	case r.Decision.Approved:
		return StatusApproved
	default:
		return StatusRejected
	}
}

// Mode — текущий многошаговый сценарий чата. У чата ровно один режим.
type Mode int

const (
	ModeNone Mode = iota
	ModeAwaitCustomAmount // ждём сумму чека из меню
	ModeAwaitInlineAmount // ждём сумму inline-чека (админ)
	ModeAwaitAdminID      // ждём ID нового админа
)
