package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"freelancehub/internal/domain/entity"
	"freelancehub/internal/domain/repository"
	"freelancehub/internal/domain/service"
	"freelancehub/pkg/errors"
)

type memoryUserRepository struct {
	users map[string]*entity.User
	seq   int
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*entity.User)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		r.seq++
		user.ID = "user-" + strconv.Itoa(r.seq)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

type memoryGigRepository struct {
	gigs map[string]*entity.Gig
	seq  int
}

func newMemoryGigRepository() *memoryGigRepository {
	return &memoryGigRepository{gigs: make(map[string]*entity.Gig)}
}

func (r *memoryGigRepository) Create(ctx context.Context, gig *entity.Gig) error {
	if gig.ID == "" {
		r.seq++
		gig.ID = "gig-" + strconv.Itoa(r.seq)
	}
	r.gigs[gig.ID] = gig
	return nil
}

func (r *memoryGigRepository) GetByID(ctx context.Context, id string) (*entity.Gig, error) {
	gig, ok := r.gigs[id]
	if !ok {
		return nil, errors.NotFound("Gig", nil)
	}
	return gig, nil
}

func (r *memoryGigRepository) Update(ctx context.Context, gig *entity.Gig) error {
	if _, ok := r.gigs[gig.ID]; !ok {
		return errors.NotFound("Gig", nil)
	}
	r.gigs[gig.ID] = gig
	return nil
}

func (r *memoryGigRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.gigs[id]; !ok {
		return errors.NotFound("Gig", nil)
	}
	delete(r.gigs, id)
	return nil
}

func (r *memoryGigRepository) List(ctx context.Context, filter repository.GigFilter, limit, offset int) ([]*entity.Gig, int64, error) {
	var gigs []*entity.Gig
	for _, gig := range r.gigs {
		if filter.Category != "" && gig.Category != filter.Category {
			continue
		}
		if filter.MinPrice > 0 && gig.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && gig.Price > filter.MaxPrice {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(gig.Title), strings.ToLower(filter.Search)) {
			continue
		}
		gigs = append(gigs, gig)
	}
	sort.Slice(gigs, func(i, j int) bool { return gigs[i].ID < gigs[j].ID })

	total := int64(len(gigs))
	if offset >= len(gigs) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(gigs) {
		end = len(gigs)
	}
	return gigs[offset:end], total, nil
}

func (r *memoryGigRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Gig, error) {
	var gigs []*entity.Gig
	for _, gig := range r.gigs {
		if gig.UserID == sellerID {
			gigs = append(gigs, gig)
		}
	}
	return gigs, nil
}

func (r *memoryGigRepository) AddStars(ctx context.Context, gigID string, stars int) error {
	gig, ok := r.gigs[gigID]
	if !ok {
		return errors.NotFound("Gig", nil)
	}
	gig.TotalStars += stars
	gig.StarNumber++
	return nil
}

type memoryConversationRepository struct {
	conversations map[string]*entity.Conversation
	summaryErr    error
	seq           int
}

func newMemoryConversationRepository() *memoryConversationRepository {
	return &memoryConversationRepository{conversations: make(map[string]*entity.Conversation)}
}

func (r *memoryConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if _, ok := r.conversations[conversation.ConversationID]; ok {
		return errors.Conflict("conversation", conversation.ConversationID)
	}
	if conversation.ID == "" {
		r.seq++
		conversation.ID = "conv-" + strconv.Itoa(r.seq)
	}
	r.conversations[conversation.ConversationID] = conversation
	return nil
}

func (r *memoryConversationRepository) GetByStorageID(ctx context.Context, id string) (*entity.Conversation, error) {
	for _, conversation := range r.conversations {
		if conversation.ID == id {
			return conversation, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *memoryConversationRepository) GetByConversationID(ctx context.Context, conversationID string) (*entity.Conversation, error) {
	conversation, ok := r.conversations[conversationID]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (r *memoryConversationRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Conversation, error) {
	var conversations []*entity.Conversation
	for _, conversation := range r.conversations {
		if conversation.SellerID == sellerID {
			conversations = append(conversations, conversation)
		}
	}
	return conversations, nil
}

func (r *memoryConversationRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Conversation, error) {
	var conversations []*entity.Conversation
	for _, conversation := range r.conversations {
		if conversation.BuyerID == buyerID {
			conversations = append(conversations, conversation)
		}
	}
	return conversations, nil
}

func (r *memoryConversationRepository) FindByParticipants(ctx context.Context, userA, userB string) (*entity.Conversation, error) {
	for _, conversation := range r.conversations {
		if conversation.SellerID == userA && conversation.BuyerID == userB {
			return conversation, nil
		}
		if conversation.SellerID == userB && conversation.BuyerID == userA {
			return conversation, nil
		}
	}
	return nil, nil
}

func (r *memoryConversationRepository) SetReadFlag(ctx context.Context, conversationID string, forSeller bool) error {
	conversation, ok := r.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	if forSeller {
		conversation.ReadBySeller = true
	} else {
		conversation.ReadByBuyer = true
	}
	return nil
}

func (r *memoryConversationRepository) SetReadFlags(ctx context.Context, conversationID string, readBySeller, readByBuyer bool) error {
	conversation, ok := r.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.ReadBySeller = readBySeller
	conversation.ReadByBuyer = readByBuyer
	return nil
}

func (r *memoryConversationRepository) UpdateSummary(ctx context.Context, conversationID string, readBySeller, readByBuyer bool, lastMessage string) error {
	if r.summaryErr != nil {
		return r.summaryErr
	}
	conversation, ok := r.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.ReadBySeller = readBySeller
	conversation.ReadByBuyer = readByBuyer
	conversation.LastMessage = lastMessage
	return nil
}

type memoryMessageRepository struct {
	messages []*entity.Message
	seq      int
}

func newMemoryMessageRepository() *memoryMessageRepository {
	return &memoryMessageRepository{}
}

func (r *memoryMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		r.seq++
		message.ID = "msg-" + strconv.Itoa(r.seq)
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *memoryMessageRepository) ListByConversationID(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	var messages []*entity.Message
	for _, message := range r.messages {
		if message.ConversationID == conversationID {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

type memoryOrderRepository struct {
	orders map[string]*entity.Order
	seq    int
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[string]*entity.Order)}
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		r.seq++
		order.ID = "order-" + strconv.Itoa(r.seq)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *memoryOrderRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range r.orders {
		if order.SellerID == sellerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *memoryOrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range r.orders {
		if order.BuyerID == buyerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *memoryOrderRepository) SetPaymentIntent(ctx context.Context, id, paymentIntent string) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	order.PaymentIntent = paymentIntent
	return nil
}

func (r *memoryOrderRepository) MarkCompleted(ctx context.Context, id string) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	order.IsCompleted = true
	return nil
}

type memoryReviewRepository struct {
	reviews map[string]*entity.Review
	seq     int
}

func newMemoryReviewRepository() *memoryReviewRepository {
	return &memoryReviewRepository{reviews: make(map[string]*entity.Review)}
}

func (r *memoryReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		r.seq++
		review.ID = "review-" + strconv.Itoa(r.seq)
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *memoryReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return review, nil
}

func (r *memoryReviewRepository) GetByGigAndUser(ctx context.Context, gigID, userID string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.GigID == gigID && review.UserID == userID {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *memoryReviewRepository) ListByGig(ctx context.Context, gigID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range r.reviews {
		if review.GigID == gigID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *memoryReviewRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return errors.NotFound("Review", nil)
	}
	delete(r.reviews, id)
	return nil
}

// fakePaymentService records the last params it saw and answers from a
// fixed set of known intents.
type fakePaymentService struct {
	lastParams service.PaymentIntentParams
	known      map[string]*service.PaymentIntent
	createErr  error
	seq        int
}

func newFakePaymentService() *fakePaymentService {
	return &fakePaymentService{known: make(map[string]*service.PaymentIntent)}
}

func (s *fakePaymentService) CreatePaymentIntent(ctx context.Context, params service.PaymentIntentParams) (*service.PaymentIntent, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.lastParams = params
	s.seq++
	intent := &service.PaymentIntent{
		ID:           "pi_" + strconv.Itoa(s.seq),
		ClientSecret: "pi_" + strconv.Itoa(s.seq) + "_secret",
		Status:       "requires_payment_method",
	}
	s.known[intent.ID] = intent
	return intent, nil
}

func (s *fakePaymentService) GetPaymentIntent(ctx context.Context, id string) (*service.PaymentIntent, error) {
	intent, ok := s.known[id]
	if !ok {
		return nil, errors.NotFound("Payment intent", nil)
	}
	return intent, nil
}
