package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
)

const (
	auctionCollection = "auctions"
	bidCollection     = "bids"
	userCollection    = "users"
	proofCollection   = "payment_proofs"
)

// MongoRepo implements AuctionDB, BidDB, UserDB and PaymentProofDB on a
// MongoDB database. Auction documents embed the denormalized bid list, so
// the CurrentBid swap and the summary entry land in one document update.
type MongoRepo struct {
	auctions *mongo.Collection
	bids     *mongo.Collection
	users    *mongo.Collection
	proofs   *mongo.Collection
}

// ConnectMongo dials MongoDB with bounded connect/ping timeouts and returns
// a repository bound to the named database.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoRepo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("repository: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repository: mongo ping: %w", err)
	}

	repo := NewMongoRepo(client.Database(database))
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewMongoRepo wraps an already-connected database handle.
func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		auctions: db.Collection(auctionCollection),
		bids:     db.Collection(bidCollection),
		users:    db.Collection(userCollection),
		proofs:   db.Collection(proofCollection),
	}
}

func (r *MongoRepo) ensureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("repository: user email index: %w", err)
	}

	// One bid record per (bidder, auction) pair.
	_, err = r.bids.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "auctionid", Value: 1}, {Key: "bidder.bidderid", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("repository: bid uniqueness index: %w", err)
	}

	_, err = r.auctions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdby", Value: 1}, {Key: "endtime", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("repository: auction creator index: %w", err)
	}
	return nil
}

// AuctionDB implementation

// CreateAuction stores a new auction after write-boundary validation.
func (r *MongoRepo) CreateAuction(ctx context.Context, auction model.Auction) error {
	if err := auction.Validate(); err != nil {
		return fmt.Errorf("create auction: %w", err)
	}
	if auction.Bids == nil {
		auction.Bids = []model.BidSummary{}
	}
	if _, err := r.auctions.InsertOne(ctx, auction); err != nil {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, err)
	}
	return nil
}

// GetAuction returns the auction with the given id.
func (r *MongoRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := r.auctions.FindOne(ctx, bson.M{"_id": auctionID}).Decode(&auction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns all auctions in creation order.
func (r *MongoRepo) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	return r.findAuctions(ctx, bson.M{})
}

// ListAuctionsByCreator returns auctions owned by creatorID ending after endAfter.
func (r *MongoRepo) ListAuctionsByCreator(ctx context.Context, creatorID string, endAfter time.Time) ([]model.Auction, error) {
	filter := bson.M{"createdby": creatorID}
	if !endAfter.IsZero() {
		filter["endtime"] = bson.M{"$gt": endAfter}
	}
	return r.findAuctions(ctx, filter)
}

// ListUnsettledAuctions returns ended auctions awaiting commission settlement.
func (r *MongoRepo) ListUnsettledAuctions(ctx context.Context, now time.Time) ([]model.Auction, error) {
	return r.findAuctions(ctx, bson.M{
		"endtime":              bson.M{"$lt": now},
		"commissioncalculated": false,
	})
}

func (r *MongoRepo) findAuctions(ctx context.Context, filter bson.M) ([]model.Auction, error) {
	cursor, err := r.auctions.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdat", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find auctions: %w", err)
	}
	var auctions []model.Auction
	if err := cursor.All(ctx, &auctions); err != nil {
		return nil, fmt.Errorf("decode auctions: %w", err)
	}
	return auctions, nil
}

// UpdateAuction replaces a stored auction after write-boundary validation.
func (r *MongoRepo) UpdateAuction(ctx context.Context, auction model.Auction) error {
	if err := auction.Validate(); err != nil {
		return fmt.Errorf("update auction: %w", err)
	}
	if auction.Bids == nil {
		auction.Bids = []model.BidSummary{}
	}
	res, err := r.auctions.ReplaceOne(ctx, bson.M{"_id": auction.AuctionID}, auction)
	if err != nil {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// UpdateWinningBid swaps CurrentBid and writes the denormalized summary in a
// single document update; the filter on the previously-read CurrentBid makes
// the write a compare-and-swap.
func (r *MongoRepo) UpdateWinningBid(ctx context.Context, auctionID string, expectedBid float64, entry model.BidSummary, replaceExisting bool) (bool, error) {
	filter := bson.M{"_id": auctionID, "currentbid": expectedBid}
	var update bson.M
	if replaceExisting {
		filter["bids.bidderid"] = entry.BidderID
		update = bson.M{"$set": bson.M{
			"currentbid":    entry.Amount,
			"bids.$.amount": entry.Amount,
		}}
	} else {
		update = bson.M{
			"$set":  bson.M{"currentbid": entry.Amount},
			"$push": bson.M{"bids": entry},
		}
	}

	res, err := r.auctions.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("update winning bid for %s: %w", auctionID, err)
	}
	if res.MatchedCount == 0 {
		// Lost the swap, or the auction vanished; let the caller re-read.
		return false, nil
	}
	return true, nil
}

// DeleteAuction removes the auction document. Bid cascade is the caller's duty.
func (r *MongoRepo) DeleteAuction(ctx context.Context, auctionID string) error {
	res, err := r.auctions.DeleteOne(ctx, bson.M{"_id": auctionID})
	if err != nil {
		return fmt.Errorf("delete auction %s: %w", auctionID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// BidDB implementation

// CreateBid stores the first bid of a (bidder, auction) pair. The unique
// index turns a racing duplicate into an error instead of a second record.
func (r *MongoRepo) CreateBid(ctx context.Context, bid model.Bid) error {
	if bid.Amount <= 0 {
		return fmt.Errorf("create bid: non-positive amount: %w", auctionerrors.ErrValidation)
	}
	if _, err := r.bids.InsertOne(ctx, bid); err != nil {
		return fmt.Errorf("create bid for auction %s: %w", bid.AuctionID, err)
	}
	return nil
}

// GetBidByBidder returns the single record for a (bidder, auction) pair.
func (r *MongoRepo) GetBidByBidder(ctx context.Context, auctionID, bidderID string) (model.Bid, error) {
	var bid model.Bid
	err := r.bids.FindOne(ctx, bson.M{"auctionid": auctionID, "bidder.bidderid": bidderID}).Decode(&bid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Bid{}, fmt.Errorf("get bid for auction %s by %s: %w", auctionID, bidderID, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid for auction %s by %s: %w", auctionID, bidderID, err)
	}
	return bid, nil
}

// UpdateBidAmount raises an existing record's amount in place.
func (r *MongoRepo) UpdateBidAmount(ctx context.Context, auctionID, bidderID string, amount float64) error {
	res, err := r.bids.UpdateOne(ctx,
		bson.M{"auctionid": auctionID, "bidder.bidderid": bidderID},
		bson.M{"$set": bson.M{"amount": amount}},
	)
	if err != nil {
		return fmt.Errorf("update bid for auction %s by %s: %w", auctionID, bidderID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update bid for auction %s by %s: %w", auctionID, bidderID, auctionerrors.ErrBidNotFound)
	}
	return nil
}

// ListBidsByAuction returns an auction's bid records, highest amount first.
func (r *MongoRepo) ListBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	cursor, err := r.bids.Find(ctx, bson.M{"auctionid": auctionID},
		options.Find().SetSort(bson.D{{Key: "amount", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, err)
	}
	var bids []model.Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("decode bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// DeleteBidsByAuction drops every bid record of an auction.
func (r *MongoRepo) DeleteBidsByAuction(ctx context.Context, auctionID string) error {
	if _, err := r.bids.DeleteMany(ctx, bson.M{"auctionid": auctionID}); err != nil {
		return fmt.Errorf("delete bids for auction %s: %w", auctionID, err)
	}
	return nil
}

// UserDB implementation

// CreateUser stores a new user; the unique email index backs the conflict rule.
func (r *MongoRepo) CreateUser(ctx context.Context, user model.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrEmailTaken)
		}
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	return nil
}

// GetUser returns the user with the given id.
func (r *MongoRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under email.
func (r *MongoRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, err)
	}
	return user, nil
}

// AddUnpaidCommission atomically adds delta to the unpaid balance.
func (r *MongoRepo) AddUnpaidCommission(ctx context.Context, userID string, delta float64) error {
	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"unpaidcommission": delta}},
	)
	if err != nil {
		return fmt.Errorf("add commission for %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("add commission for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return nil
}

// ClearUnpaidCommission resets the unpaid balance to zero.
func (r *MongoRepo) ClearUnpaidCommission(ctx context.Context, userID string) error {
	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"unpaidcommission": float64(0)}},
	)
	if err != nil {
		return fmt.Errorf("clear commission for %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("clear commission for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return nil
}

// RecordAuctionWin credits the winner's counters.
func (r *MongoRepo) RecordAuctionWin(ctx context.Context, userID string, amount float64) error {
	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"auctionswon": 1, "moneyspent": amount}},
	)
	if err != nil {
		return fmt.Errorf("record win for %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("record win for %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return nil
}

// ListTopSpenders returns up to limit users ordered by MoneySpent descending.
func (r *MongoRepo) ListTopSpenders(ctx context.Context, limit int) ([]model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "moneyspent", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.users.Find(ctx, bson.M{"moneyspent": bson.M{"$gt": 0}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list top spenders: %w", err)
	}
	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode top spenders: %w", err)
	}
	return users, nil
}

// PaymentProofDB implementation

// CreatePaymentProof records a pending commission payment proof.
func (r *MongoRepo) CreatePaymentProof(ctx context.Context, proof model.PaymentProof) error {
	if _, err := r.proofs.InsertOne(ctx, proof); err != nil {
		return fmt.Errorf("create payment proof for %s: %w", proof.UserID, err)
	}
	return nil
}

// ListPaymentProofsByUser returns a user's proofs in upload order.
func (r *MongoRepo) ListPaymentProofsByUser(ctx context.Context, userID string) ([]model.PaymentProof, error) {
	cursor, err := r.proofs.Find(ctx, bson.M{"userid": userID},
		options.Find().SetSort(bson.D{{Key: "uploadedat", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list payment proofs for %s: %w", userID, err)
	}
	var proofs []model.PaymentProof
	if err := cursor.All(ctx, &proofs); err != nil {
		return nil, fmt.Errorf("decode payment proofs for %s: %w", userID, err)
	}
	return proofs, nil
}
