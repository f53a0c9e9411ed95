package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Product types. Hats and accessories carry a flat quantity, every other
// product is ordered per size.
const (
	ProductShirt     = "shirt"
	ProductHat       = "hat"
	ProductAccessory = "accessory"
)

// Text placement relative to the printed design
const (
	TextPositionNone  = "none"
	TextPositionAbove = "above"
	TextPositionBelow = "below"
)

// OrderStatus is the fulfilment stage of an order. Stages only move forward
// pending -> processing -> shipped -> delivered; this service only ever
// writes pending.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// UsesFlatQuantity reports whether productType is counted by a single
// quantity instead of a size breakdown.
func UsesFlatQuantity(productType string) bool {
	switch strings.ToLower(strings.TrimSpace(productType)) {
	case ProductHat, ProductAccessory:
		return true
	}
	return false
}

// Quantity is an item count decoded leniently from JSON: numbers and
// numeric strings are accepted, anything else decodes as 0.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = Quantity(coerceInt(data))
	return nil
}

// SizeQuantities maps a size label to the number ordered in that size.
// Values are coerced like Quantity; a non-object decodes as nil.
type SizeQuantities map[string]int

func (s *SizeQuantities) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*s = nil
		return nil
	}

	sizes := make(SizeQuantities, len(raw))
	for label, v := range raw {
		sizes[label] = coerceInt(v)
	}
	*s = sizes
	return nil
}

// Total sums every per-size quantity
func (s SizeQuantities) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// HasNegative reports whether any size was given a negative quantity
func (s SizeQuantities) HasNegative() bool {
	for _, n := range s {
		if n < 0 {
			return true
		}
	}
	return false
}

func coerceInt(data []byte) int {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return 0
	}

	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
	}
	return 0
}

// PayerDetails identifies the customer paying for an order
type PayerDetails struct {
	Name       string `json:"name" bson:"name" validate:"notblank"`
	Email      string `json:"email" bson:"email" validate:"notblank"`
	Phone      string `json:"phone" bson:"phone" validate:"notblank"`
	Address    string `json:"address,omitempty" bson:"address,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Notes      string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// OrderItem is one printed product in an order. Exactly one of Quantity
// and Sizes is populated once the item has been normalised.
type OrderItem struct {
	ProductType       string         `json:"productType" bson:"productType"`
	DesignID          string         `json:"designId" bson:"designId"`
	DesignImage       string         `json:"designImage" bson:"designImage"`
	Color             string         `json:"color" bson:"color"`
	PrintColor        string         `json:"printColor" bson:"printColor"`
	Sizes             SizeQuantities `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Quantity          Quantity       `json:"quantity,omitempty" bson:"quantity,omitempty"`
	DesignPrompt      string         `json:"designPrompt" bson:"designPrompt"`
	FrontText         string         `json:"frontText" bson:"frontText"`
	FrontTextPosition string         `json:"frontTextPosition" bson:"frontTextPosition"`
	BackText          string         `json:"backText" bson:"backText"`
	BackTextPosition  string         `json:"backTextPosition" bson:"backTextPosition"`
}

// ItemQuantity is the number of units the item contributes to the order
func (i OrderItem) ItemQuantity() int {
	if UsesFlatQuantity(i.ProductType) {
		if i.Quantity > 0 {
			return int(i.Quantity)
		}
		return 0
	}
	if total := i.Sizes.Total(); total > 0 {
		return total
	}
	return 0
}

// LegacyItemFields is a flattened copy of the first item kept on the order
// document for readers that predate multi-item orders.
type LegacyItemFields struct {
	ProductType       string         `json:"productType,omitempty" bson:"productType,omitempty"`
	DesignID          string         `json:"designId,omitempty" bson:"designId,omitempty"`
	DesignImage       string         `json:"designImage,omitempty" bson:"designImage,omitempty"`
	Color             string         `json:"color,omitempty" bson:"color,omitempty"`
	PrintColor        string         `json:"printColor,omitempty" bson:"printColor,omitempty"`
	Sizes             SizeQuantities `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Quantity          Quantity       `json:"quantity,omitempty" bson:"quantity,omitempty"`
	DesignPrompt      string         `json:"designPrompt,omitempty" bson:"designPrompt,omitempty"`
	FrontText         string         `json:"frontText,omitempty" bson:"frontText,omitempty"`
	FrontTextPosition string         `json:"frontTextPosition,omitempty" bson:"frontTextPosition,omitempty"`
	BackText          string         `json:"backText,omitempty" bson:"backText,omitempty"`
	BackTextPosition  string         `json:"backTextPosition,omitempty" bson:"backTextPosition,omitempty"`
}

// LegacyFieldsFrom flattens item into the legacy view
func LegacyFieldsFrom(item OrderItem) LegacyItemFields {
	return LegacyItemFields(item)
}

// CreateOrderRequest is the body of POST /api/orders
type CreateOrderRequest struct {
	UserID       string       `json:"userId" validate:"notblank"`
	PayerDetails PayerDetails `json:"payerDetails"`
	OrderItems   []OrderItem  `json:"orderItems" validate:"required,min=1"`
}

// Order is the persisted order document
type Order struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	UserID        string       `json:"userId" bson:"userId"`
	PayerDetails  PayerDetails `json:"payerDetails" bson:"payerDetails"`
	OrderItems    []OrderItem  `json:"orderItems" bson:"orderItems"`
	TotalQuantity int          `json:"totalQuantity" bson:"totalQuantity"`
	TotalPrice    float64      `json:"totalPrice" bson:"totalPrice"`
	BasePrice     float64      `json:"basePrice" bson:"basePrice"`
	Status        OrderStatus  `json:"status" bson:"status"`
	OrderDate     time.Time    `json:"orderDate" bson:"orderDate"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" bson:"updatedAt"`

	LegacyItemFields `bson:",inline"`
}
