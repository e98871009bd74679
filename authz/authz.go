// Package authz answers a single question: given who the caller is and
// how they relate to the resource they are touching, may the requested
// mutation proceed. Decisions are pure functions of their inputs;
// nothing here reads storage.
package authz

import (
	"github.com/haons211/pmai-fooddelivery-datn/models"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allow  bool   `json:"allow"`
	Reason string `json:"reason,omitempty"`
}

// Action is a request to mutate one resource, carrying the resource
// fields the rules need.
type Action interface {
	name() string
}

// DeleteRestaurant asks to delete the given restaurant.
type DeleteRestaurant struct {
	Restaurant models.Restaurant
}

// UpdateProfile asks to update the account identified by TargetID.
type UpdateProfile struct {
	TargetID uint
}

// DeleteAccount asks to delete the account identified by TargetID.
type DeleteAccount struct {
	TargetID uint
}

// TransitionOrder asks to move an order to a new status. Restaurant is
// the order's restaurant if one is on record, nil otherwise.
type TransitionOrder struct {
	Order      models.Order
	Restaurant *models.Restaurant
	To         models.OrderStatus
}

func (DeleteRestaurant) name() string { return "delete_restaurant" }
func (UpdateProfile) name() string    { return "update_profile" }
func (DeleteAccount) name() string    { return "delete_account" }
func (TransitionOrder) name() string  { return "transition_order" }

func allow() Decision { return Decision{Allow: true} }

func deny(reason string) Decision { return Decision{Allow: false, Reason: reason} }

// Authorize evaluates the rule table for one (actor, action) pair.
// Anything not explicitly allowed is denied, and a missing owner
// reference never widens access: an ownerless resource is admin-only.
func Authorize(actor models.User, action Action) Decision {
	switch a := action.(type) {
	case DeleteRestaurant:
		if actor.Role == models.RoleAdmin {
			return allow()
		}
		if a.Restaurant.OwnerID != nil && *a.Restaurant.OwnerID == actor.ID {
			return allow()
		}
		return deny("only the restaurant owner or an admin can delete this restaurant")

	case UpdateProfile:
		if actor.ID == a.TargetID {
			return allow()
		}
		if actor.Role == models.RoleAdmin {
			return allow()
		}
		return deny("only the account holder or an admin can update this profile")

	case DeleteAccount:
		if actor.ID == a.TargetID {
			return allow()
		}
		if actor.Role == models.RoleAdmin {
			return allow()
		}
		return deny("only the account holder or an admin can delete this account")

	case TransitionOrder:
		if actor.Role == models.RoleAdmin {
			return allow()
		}
		// The buyer may always cancel their own order, restaurant
		// ownership or not.
		if actor.ID == a.Order.BuyerID && a.To == models.StatusCancelled {
			return allow()
		}
		owns := ownsRestaurant(actor, a.Restaurant)
		// A buyer who does not operate the restaurant gets nothing
		// beyond that cancel, whatever their role says.
		if actor.ID == a.Order.BuyerID && !owns {
			return deny("customers can only cancel their own orders, not change to other statuses")
		}
		if actor.Role == models.RoleVendor && owns {
			return allow()
		}
		return deny("you don't have permission to update this order's status")
	}
	return deny("forbidden")
}

func ownsRestaurant(actor models.User, r *models.Restaurant) bool {
	return r != nil && r.OwnerID != nil && *r.OwnerID == actor.ID
}
