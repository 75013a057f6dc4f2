package models

import (
	"strings"
	"time"
)

// Estados posibles de un producto
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// Roles que entrega el colaborador de identidad
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// Product representa una publicación del marketplace
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Images      []string  `json:"images" bson:"images"`
	SellerID    int64     `json:"sellerId" bson:"seller_id"`
	SellerName  string    `json:"sellerName" bson:"seller_name"`
	Stock       int       `json:"stock" bson:"stock"`
	Status      string    `json:"status" bson:"status"`
	Views       int64     `json:"views" bson:"views"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// ProductInput son los campos que acepta la creación de un producto.
// Price y Stock son punteros para distinguir "ausente" de cero. Las
// restricciones estructurales van en los binding tags; min/max sobre
// strings cuenta runas, no bytes.
type ProductInput struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"required,min=1,max=1000"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required,oneof=electronics fashion home books"`
	Images      []string `json:"images" binding:"omitempty,dive,http_url"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Status      string   `json:"status" binding:"omitempty,oneof=active inactive pending"`
}

// ProductUpdate representa los campos actualizables de un producto.
// Solo los campos presentes en el request se aplican; un puntero nil
// significa "no tocar". Stock 0 es una actualización legítima.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=1000"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,oneof=electronics fashion home books"`
	Images      []string `json:"images,omitempty" binding:"omitempty,dive,http_url"`
	Stock       *int     `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive pending"`
}

// Identity es la identidad ya autenticada que entrega el colaborador externo
type Identity struct {
	UserID    int64
	Role      string
	FirstName string
	LastName  string
}

// DisplayName arma el nombre denormalizado del vendedor (nombre + apellido).
// Si ambos están vacíos se usa un placeholder.
func (i Identity) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName))
	if name == "" {
		return "Unknown Seller"
	}
	return name
}
