package models

import "fmt"

type UserRole string

const (
	RoleVisitor UserRole = "visitor"
	RoleBuyer   UserRole = "buyer"
	RoleRenter  UserRole = "renter"
	RoleLister  UserRole = "lister"
	RoleAdmin   UserRole = "admin"
)

func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleVisitor, RoleBuyer, RoleRenter, RoleLister, RoleAdmin:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

type VerificationStatus string

const (
	VerificationPending      VerificationStatus = "pending"
	VerificationVerified     VerificationStatus = "verified"
	VerificationRejected     VerificationStatus = "rejected"
	VerificationNotSubmitted VerificationStatus = "not_submitted"
)

func ParseVerificationStatus(s string) (VerificationStatus, error) {
	switch VerificationStatus(s) {
	case VerificationPending, VerificationVerified, VerificationRejected, VerificationNotSubmitted:
		return VerificationStatus(s), nil
	}
	return "", fmt.Errorf("invalid verification status %q", s)
}

type ListingStatus string

const (
	ListingActive   ListingStatus = "active"
	ListingHidden   ListingStatus = "hidden"
	ListingPending  ListingStatus = "pending"
	ListingVerified ListingStatus = "verified"
	ListingRejected ListingStatus = "rejected"
	ListingExpired  ListingStatus = "expired"
)

func ParseListingStatus(s string) (ListingStatus, error) {
	switch ListingStatus(s) {
	case ListingActive, ListingHidden, ListingPending, ListingVerified, ListingRejected, ListingExpired:
		return ListingStatus(s), nil
	}
	return "", fmt.Errorf("invalid listing status %q", s)
}

type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyLand        PropertyType = "land"
	PropertyRental      PropertyType = "rental"
)

func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case PropertyResidential, PropertyCommercial, PropertyLand, PropertyRental:
		return PropertyType(s), nil
	}
	return "", fmt.Errorf("invalid property type %q", s)
}

type MessageStatus string

const (
	MessageUnread MessageStatus = "unread"
	MessageRead   MessageStatus = "read"
)

type ReviewTargetType string

const (
	TargetProperty ReviewTargetType = "property"
	TargetLister   ReviewTargetType = "lister"
)

func ParseReviewTargetType(s string) (ReviewTargetType, error) {
	switch ReviewTargetType(s) {
	case TargetProperty, TargetLister:
		return ReviewTargetType(s), nil
	}
	return "", fmt.Errorf("invalid target type %q", s)
}
