package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/interfaces/http/middleware"
)

// withUser plays the role of the auth middleware in handler tests.
func withUser(user *entities.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.ID)
		c.Set(middleware.UserEmailKey, user.Email)
		c.Set(middleware.UserRoleKey, string(user.Role))
		c.Next()
	}
}

// In-memory repository stubs shared by the handler tests. They implement the
// domain repository interfaces so the handlers run against real usecases.

type userRepoStub struct {
	byID    map[uuid.UUID]*entities.User
	byEmail map[string]uuid.UUID
}

func newUserRepoStub(users ...*entities.User) *userRepoStub {
	s := &userRepoStub{byID: map[uuid.UUID]*entities.User{}, byEmail: map[string]uuid.UUID{}}
	for _, u := range users {
		cpy := *u
		s.byID[u.ID] = &cpy
		s.byEmail[u.Email] = u.ID
	}
	return s
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if _, ok := s.byEmail[user.Email]; ok {
		return domainerrors.ErrAlreadyExists
	}
	cpy := *user
	s.byID[user.ID] = &cpy
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	id, ok := s.byEmail[email]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *s.byID[id]
	return &cpy, nil
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.byID[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cpy := *user
	s.byID[user.ID] = &cpy
	return nil
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *userRepoStub) UpdateModeration(_ context.Context, id uuid.UUID, status *entities.UserStatus, role *entities.UserRole) error {
	u, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if status != nil {
		u.Status = *status
	}
	if role != nil {
		u.Role = *role
	}
	return nil
}

func (s *userRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.byEmail, u.Email)
	delete(s.byID, id)
	return nil
}

func (s *userRepoStub) List(_ context.Context, search string) ([]*entities.User, error) {
	out := []*entities.User{}
	for _, u := range s.byID {
		if search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(u.Email), strings.ToLower(search)) {
			continue
		}
		cpy := *u
		out = append(out, &cpy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (s *userRepoStub) Count(context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

type productRepoStub struct {
	items map[uuid.UUID]*entities.Product
}

func newProductRepoStub(products ...*entities.Product) *productRepoStub {
	s := &productRepoStub{items: map[uuid.UUID]*entities.Product{}}
	for _, p := range products {
		cpy := *p
		s.items[p.ID] = &cpy
	}
	return s
}

func (s *productRepoStub) Create(_ context.Context, product *entities.Product) error {
	cpy := *product
	s.items[product.ID] = &cpy
	return nil
}

func (s *productRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *p
	return &cpy, nil
}

func (s *productRepoStub) Update(_ context.Context, product *entities.Product) error {
	if _, ok := s.items[product.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cpy := *product
	s.items[product.ID] = &cpy
	return nil
}

func (s *productRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ProductStatus) error {
	p, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	p.Status = status
	return nil
}

func (s *productRepoStub) DecrementStock(_ context.Context, id uuid.UUID, quantity int) error {
	p, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if p.Stock < quantity {
		return domainerrors.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

func (s *productRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *productRepoStub) List(_ context.Context, filter entities.ProductFilter) ([]*entities.Product, int64, error) {
	out := []*entities.Product{}
	for _, p := range s.items {
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		cpy := *p
		out = append(out, &cpy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (s *productRepoStub) CountAll(context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *productRepoStub) CountByDealer(_ context.Context, dealerEmail string, status entities.ProductStatus) (int64, error) {
	var n int64
	for _, p := range s.items {
		if p.DealerEmail != dealerEmail {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		n++
	}
	return n, nil
}

type pickupRepoStub struct {
	items map[string]*entities.Pickup
}

func newPickupRepoStub(pickups ...*entities.Pickup) *pickupRepoStub {
	s := &pickupRepoStub{items: map[string]*entities.Pickup{}}
	for _, p := range pickups {
		cpy := *p
		s.items[p.ID] = &cpy
	}
	return s
}

func (s *pickupRepoStub) Create(_ context.Context, pickup *entities.Pickup) error {
	cpy := *pickup
	s.items[pickup.ID] = &cpy
	return nil
}

func (s *pickupRepoStub) GetByID(_ context.Context, id string) (*entities.Pickup, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *p
	return &cpy, nil
}

func (s *pickupRepoStub) UpdateStatus(_ context.Context, id string, status entities.PickupStatus) error {
	p, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	p.Status = status
	return nil
}

func (s *pickupRepoStub) List(context.Context) ([]*entities.Pickup, error) {
	out := []*entities.Pickup{}
	for _, p := range s.items {
		cpy := *p
		out = append(out, &cpy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *pickupRepoStub) ListByUser(_ context.Context, userEmail string) ([]*entities.Pickup, error) {
	out := []*entities.Pickup{}
	for _, p := range s.items {
		if p.UserEmail == userEmail {
			cpy := *p
			out = append(out, &cpy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *pickupRepoStub) Count(context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *pickupRepoStub) CountByUser(_ context.Context, userEmail string) (int64, error) {
	var n int64
	for _, p := range s.items {
		if p.UserEmail == userEmail {
			n++
		}
	}
	return n, nil
}

func (s *pickupRepoStub) GetStaleScheduled(_ context.Context, cutoff time.Time, limit int) ([]*entities.Pickup, error) {
	out := []*entities.Pickup{}
	for _, p := range s.items {
		if p.Status == entities.PickupStatusScheduled && p.Date.Before(cutoff) {
			cpy := *p
			out = append(out, &cpy)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *pickupRepoStub) CancelBatch(_ context.Context, ids []string) error {
	for _, id := range ids {
		if p, ok := s.items[id]; ok {
			p.Status = entities.PickupStatusCancelled
		}
	}
	return nil
}

type transactionRepoStub struct {
	items map[string]*entities.Transaction
}

func newTransactionRepoStub(txns ...*entities.Transaction) *transactionRepoStub {
	s := &transactionRepoStub{items: map[string]*entities.Transaction{}}
	for _, t := range txns {
		cpy := *t
		s.items[t.ID] = &cpy
	}
	return s
}

func (s *transactionRepoStub) Create(_ context.Context, txn *entities.Transaction) error {
	cpy := *txn
	s.items[txn.ID] = &cpy
	return nil
}

func (s *transactionRepoStub) GetByID(_ context.Context, id string) (*entities.Transaction, error) {
	t, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *t
	return &cpy, nil
}

func (s *transactionRepoStub) UpdateStatus(_ context.Context, id string, status entities.TransactionStatus) error {
	t, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	t.Status = status
	return nil
}

func (s *transactionRepoStub) List(context.Context) ([]*entities.Transaction, error) {
	return s.filter(func(*entities.Transaction) bool { return true }), nil
}

func (s *transactionRepoStub) ListByCustomer(_ context.Context, customerEmail string) ([]*entities.Transaction, error) {
	return s.filter(func(t *entities.Transaction) bool { return t.CustomerEmail == customerEmail }), nil
}

func (s *transactionRepoStub) ListByDealer(_ context.Context, dealerEmail string) ([]*entities.Transaction, error) {
	return s.filter(func(t *entities.Transaction) bool { return t.DealerEmail == dealerEmail }), nil
}

func (s *transactionRepoStub) filter(keep func(*entities.Transaction) bool) []*entities.Transaction {
	out := []*entities.Transaction{}
	for _, t := range s.items {
		if keep(t) {
			cpy := *t
			out = append(out, &cpy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *transactionRepoStub) SumAmount(context.Context) (float64, error) {
	return s.sum(func(*entities.Transaction) bool { return true }), nil
}

func (s *transactionRepoStub) SumAmountByCustomer(_ context.Context, customerEmail string) (float64, error) {
	return s.sum(func(t *entities.Transaction) bool { return t.CustomerEmail == customerEmail }), nil
}

func (s *transactionRepoStub) SumAmountByDealer(_ context.Context, dealerEmail string) (float64, error) {
	return s.sum(func(t *entities.Transaction) bool { return t.DealerEmail == dealerEmail }), nil
}

func (s *transactionRepoStub) sum(keep func(*entities.Transaction) bool) float64 {
	var total float64
	for _, t := range s.items {
		if t.Status != entities.TransactionStatusCancelled && keep(t) {
			total += t.Amount
		}
	}
	return total
}

func (s *transactionRepoStub) CountByCustomer(_ context.Context, customerEmail string) (int64, error) {
	return int64(len(s.filter(func(t *entities.Transaction) bool { return t.CustomerEmail == customerEmail }))), nil
}

func (s *transactionRepoStub) CountByDealer(_ context.Context, dealerEmail string) (int64, error) {
	return int64(len(s.filter(func(t *entities.Transaction) bool { return t.DealerEmail == dealerEmail }))), nil
}

type rateRepoStub struct {
	items map[string]*entities.Rate
}

func newRateRepoStub(rates ...*entities.Rate) *rateRepoStub {
	s := &rateRepoStub{items: map[string]*entities.Rate{}}
	for _, r := range rates {
		cpy := *r
		s.items[r.Material] = &cpy
	}
	return s
}

func (s *rateRepoStub) GetByMaterial(_ context.Context, material string) (*entities.Rate, error) {
	r, ok := s.items[material]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *r
	return &cpy, nil
}

func (s *rateRepoStub) List(context.Context) ([]*entities.Rate, error) {
	out := []*entities.Rate{}
	for _, r := range s.items {
		cpy := *r
		out = append(out, &cpy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Material < out[j].Material })
	return out, nil
}

func (s *rateRepoStub) Upsert(_ context.Context, rate *entities.Rate) error {
	if rate.ID == uuid.Nil {
		rate.ID = uuid.New()
	}
	cpy := *rate
	s.items[rate.Material] = &cpy
	return nil
}

type tipRepoStub struct {
	items map[uuid.UUID]*entities.Tip
}

func newTipRepoStub(tips ...*entities.Tip) *tipRepoStub {
	s := &tipRepoStub{items: map[uuid.UUID]*entities.Tip{}}
	for _, t := range tips {
		cpy := *t
		s.items[t.ID] = &cpy
	}
	return s
}

func (s *tipRepoStub) Create(_ context.Context, tip *entities.Tip) error {
	cpy := *tip
	s.items[tip.ID] = &cpy
	return nil
}

func (s *tipRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Tip, error) {
	t, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cpy := *t
	return &cpy, nil
}

func (s *tipRepoStub) Update(_ context.Context, tip *entities.Tip) error {
	if _, ok := s.items[tip.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cpy := *tip
	s.items[tip.ID] = &cpy
	return nil
}

func (s *tipRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *tipRepoStub) List(_ context.Context, category string) ([]*entities.Tip, error) {
	out := []*entities.Tip{}
	for _, t := range s.items {
		if category != "" && t.Category != category {
			continue
		}
		cpy := *t
		out = append(out, &cpy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// uowStub runs the function directly, no transaction involved.
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
