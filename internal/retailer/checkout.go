package retailer

import (
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const fallbackHandoffDomain = "https://www.example.com"

// handoffTokenTTL bounds how long a handoff link stays redeemable.
const handoffTokenTTL = time.Hour

// CheckoutLinks builds the handoff URLs for a staged cart: a web checkout
// page on the store's domain, an app deep link, and a signed token binding
// the cart and store so the retailer side can trust the handoff.
func (s *Service) CheckoutLinks(cartID string) (*CheckoutLinks, error) {
	cart, err := s.Cart(cartID)
	if err != nil {
		return nil, err
	}

	base := fallbackHandoffDomain
	if store, ok := s.StoreByID(cart.StoreID); ok && store.HandoffDomain != "" {
		base = store.HandoffDomain
	}

	query := url.Values{
		"cartId":  {cart.ID},
		"storeId": {cart.StoreID},
	}.Encode()

	token, err := s.signHandoffToken(cart)
	if err != nil {
		return nil, fmt.Errorf("failed to sign handoff token: %w", err)
	}

	return &CheckoutLinks{
		CartID:       cart.ID,
		WebURL:       fmt.Sprintf("%s/checkout?%s", base, query),
		DeepLink:     fmt.Sprintf("retailer://checkout?%s", query),
		HandoffToken: token,
	}, nil
}

func (s *Service) signHandoffToken(cart *Cart) (string, error) {
	if len(s.signingKey) == 0 {
		return "", nil
	}
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"cartId":  cart.ID,
		"storeId": cart.StoreID,
		"iat":     now.Unix(),
		"exp":     now.Add(handoffTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}
