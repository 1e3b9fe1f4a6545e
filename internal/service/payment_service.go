package service

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
	appErrors "github.com/campora/scs-api/pkg/errors"
	"github.com/campora/scs-api/pkg/payment"
)

type paymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) (*mongo.InsertOneResult, error)
	ByUserEmail(ctx context.Context, email string, newestFirst bool) ([]models.Payment, error)
}

// CreateIntentRequest carries the course price to charge.
type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// IntentResponse exposes only the client secret to the caller.
type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest is posted after the client confirms the payment.
type RecordPaymentRequest struct {
	UserEmail       string  `json:"user_email" validate:"required,email"`
	UserName        string  `json:"user_name"`
	InstructorEmail string  `json:"instructor_email" validate:"required,email"`
	CourseID        string  `json:"course_id" validate:"required"`
	ClassName       string  `json:"class_name" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Currency        string  `json:"currency"`
	TransactionID   string  `json:"transaction_id"`
}

// PaymentService handles payment intents and the resulting records.
type PaymentService struct {
	repo      paymentRepository
	intents   payment.IntentCreator
	currency  string
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService creates an instance of PaymentService.
func NewPaymentService(repo paymentRepository, intents payment.IntentCreator, currency string, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		repo:      repo,
		intents:   intents,
		currency:  currency,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// MinorUnits converts a price into minor currency units,
// round-half-away-from-zero: 19.99 becomes 1999.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent requests a payment intent for the given price and returns
// the client secret used for client-side confirmation.
func (s *PaymentService) CreateIntent(ctx context.Context, req CreateIntentRequest) (*IntentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	secret, err := s.intents.CreateIntent(ctx, MinorUnits(req.Price), s.currency)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "payment provider unavailable")
	}

	return &IntentResponse{ClientSecret: secret}, nil
}

// Record stores the completed payment. Seat decrement and selection
// removal are separate calls driven by the client; this record is
// immutable once inserted.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*mongo.InsertOneResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	courseID, err := parseObjectID(req.CourseID)
	if err != nil {
		return nil, err
	}

	record := &models.Payment{
		UserEmail:       req.UserEmail,
		UserName:        req.UserName,
		InstructorEmail: req.InstructorEmail,
		CourseID:        courseID,
		ClassName:       req.ClassName,
		Amount:          req.Amount,
		Currency:        req.Currency,
		TransactionID:   req.TransactionID,
		Date:            s.now().UTC(),
	}
	if record.Currency == "" {
		record.Currency = s.currency
	}
	if record.TransactionID == "" {
		record.TransactionID = uuid.NewString()
	}

	result, err := s.repo.Insert(ctx, record)
	if err != nil {
		return nil, storeError(err)
	}

	s.logger.Info("payment recorded",
		zap.String("user_email", record.UserEmail),
		zap.String("transaction_id", record.TransactionID),
		zap.Float64("amount", record.Amount),
	)
	return result, nil
}

// EnrolledCourses returns the student's payments in store order.
func (s *PaymentService) EnrolledCourses(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := s.repo.ByUserEmail(ctx, email, false)
	if err != nil {
		return nil, storeError(err)
	}
	return payments, nil
}

// History returns the student's payments, newest first.
func (s *PaymentService) History(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := s.repo.ByUserEmail(ctx, email, true)
	if err != nil {
		return nil, storeError(err)
	}
	return payments, nil
}
