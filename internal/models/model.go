package models

import (
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
)

// Roles a registered user can hold.
const (
	RoleAuctioneer = "Auctioneer"
	RoleBidder     = "Bidder"
	RoleSuperAdmin = "SuperAdmin"
)

// Image references a stored blob by its stable identifier and public URL.
type Image struct {
	PublicID string `json:"public_id" bson:"publicid"`
	URL      string `json:"url" bson:"url"`
}

// BankTransfer holds bank account details for commission payouts.
type BankTransfer struct {
	AccountNumber string `json:"bank_account_number" bson:"accountnumber"`
	AccountName   string `json:"bank_account_name" bson:"accountname"`
	BankName      string `json:"bank_name" bson:"bankname"`
}

// PaymentMethods groups the payout channels an Auctioneer must provide.
type PaymentMethods struct {
	BankTransfer BankTransfer `json:"bank_transfer" bson:"banktransfer"`
	UPINumber    string       `json:"upi_number" bson:"upinumber"`
	PayPalEmail  string       `json:"paypal_email" bson:"paypalemail"`
}

// User represents a participant in the marketplace.
type User struct {
	UserID           string         `json:"user_id" bson:"_id"`
	UserName         string         `json:"user_name" bson:"username"`
	Email            string         `json:"email" bson:"email"`
	PasswordHash     string         `json:"-" bson:"passwordhash"`
	Phone            string         `json:"phone" bson:"phone"`
	Address          string         `json:"address" bson:"address"`
	Role             string         `json:"role" bson:"role"`
	ProfileImage     Image          `json:"profile_image" bson:"profileimage"`
	PaymentMethods   PaymentMethods `json:"payment_methods" bson:"paymentmethods"`
	UnpaidCommission float64        `json:"unpaid_commission" bson:"unpaidcommission"`
	AuctionsWon      int            `json:"auctions_won" bson:"auctionswon"`
	MoneySpent       float64        `json:"money_spent" bson:"moneyspent"`
	CreatedAt        time.Time      `json:"created_at" bson:"createdat"`
}

// Validate enforces field-level constraints at the repository write boundary.
func (u User) Validate() error {
	if l := len(u.UserName); l < 3 || l > 40 {
		return fmt.Errorf("user name must be 3-40 characters: %w", auctionerrors.ErrValidation)
	}
	if u.Email == "" {
		return fmt.Errorf("email is required: %w", auctionerrors.ErrValidation)
	}
	if len(u.Phone) != 10 {
		return fmt.Errorf("phone number must contain 10 digits: %w", auctionerrors.ErrValidation)
	}
	switch u.Role {
	case RoleAuctioneer, RoleBidder, RoleSuperAdmin:
	default:
		return fmt.Errorf("unknown role %q: %w", u.Role, auctionerrors.ErrValidation)
	}
	if u.UnpaidCommission < 0 {
		return fmt.Errorf("unpaid commission cannot be negative: %w", auctionerrors.ErrValidation)
	}
	return nil
}

// BidSummary is the denormalized leaderboard entry embedded in an Auction.
// It snapshots the bidder's display details at bid time.
type BidSummary struct {
	BidderID     string  `json:"bidder_id" bson:"bidderid"`
	UserName     string  `json:"user_name" bson:"username"`
	ProfileImage string  `json:"profile_image" bson:"profileimage"`
	Amount       float64 `json:"amount" bson:"amount"`
}

// Auction represents a listed item and its bidding state.
type Auction struct {
	AuctionID            string       `json:"auction_id" bson:"_id"`
	Title                string       `json:"title" bson:"title"`
	Description          string       `json:"description" bson:"description"`
	Category             string       `json:"category" bson:"category"`
	Condition            string       `json:"condition" bson:"condition"`
	StartingBid          float64      `json:"starting_bid" bson:"startingbid"`
	CurrentBid           float64      `json:"current_bid" bson:"currentbid"`
	StartTime            time.Time    `json:"start_time" bson:"starttime"`
	EndTime              time.Time    `json:"end_time" bson:"endtime"`
	Image                Image        `json:"image" bson:"image"`
	CreatedBy            string       `json:"created_by" bson:"createdby"`
	Bids                 []BidSummary `json:"bids" bson:"bids"`
	CommissionCalculated bool         `json:"commission_calculated" bson:"commissioncalculated"`
	CreatedAt            time.Time    `json:"created_at" bson:"createdat"`
}

// Validate enforces field-level constraints at the repository write boundary.
func (a Auction) Validate() error {
	if a.Title == "" || a.Description == "" || a.Category == "" || a.Condition == "" {
		return fmt.Errorf("auction is missing required fields: %w", auctionerrors.ErrValidation)
	}
	if len(a.Title) > 120 {
		return fmt.Errorf("auction title cannot exceed 120 characters: %w", auctionerrors.ErrValidation)
	}
	if a.StartingBid <= 0 {
		return fmt.Errorf("starting bid must be positive: %w", auctionerrors.ErrValidation)
	}
	if a.CreatedBy == "" {
		return fmt.Errorf("auction creator is required: %w", auctionerrors.ErrValidation)
	}
	if !a.StartTime.Before(a.EndTime) {
		return fmt.Errorf("auction window is inverted: %w", auctionerrors.ErrValidation)
	}
	return nil
}

// HighestBid returns the maximum amount in the denormalized bid list,
// falling back to the starting bid when no bids exist. The reconciliation
// path uses it to repair a diverged CurrentBid.
func (a Auction) HighestBid() float64 {
	highest := a.StartingBid
	for _, b := range a.Bids {
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	return highest
}

// Bidder snapshots the bidding user's identity at bid time.
type Bidder struct {
	BidderID     string `json:"bidder_id" bson:"bidderid"`
	UserName     string `json:"user_name" bson:"username"`
	ProfileImage string `json:"profile_image" bson:"profileimage"`
}

// Bid is the normalized bid record. Exactly one exists per
// (bidder, auction) pair; a repeat bid updates the amount in place.
type Bid struct {
	BidID     string    `json:"bid_id" bson:"_id"`
	AuctionID string    `json:"auction_id" bson:"auctionid"`
	Amount    float64   `json:"amount" bson:"amount"`
	Bidder    Bidder    `json:"bidder" bson:"bidder"`
	CreatedAt time.Time `json:"created_at" bson:"createdat"`
}

// ProofPending marks a payment proof awaiting administrative review.
const ProofPending = "pending"

// PaymentProof records an Auctioneer's claim of a commission payment.
// Recording a proof never changes the unpaid balance; clearing is a
// separate administrative confirmation.
type PaymentProof struct {
	ProofID    string    `json:"proof_id" bson:"_id"`
	UserID     string    `json:"user_id" bson:"userid"`
	Proof      Image     `json:"proof" bson:"proof"`
	Amount     float64   `json:"amount" bson:"amount"`
	Comment    string    `json:"comment" bson:"comment"`
	Status     string    `json:"status" bson:"status"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploadedat"`
}
