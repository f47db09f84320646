// Package docs holds the Swagger document served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Registration successful", "schema": {"$ref": "#/definitions/services.AuthResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/services.ErrorResponse"}},
                    "409": {"description": "Username already taken", "schema": {"$ref": "#/definitions/services.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {"description": "Login request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/services.AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/services.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout user",
                "responses": {"200": {"description": "Logout successful"}}
            }
        },
        "/account": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get account",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}}
            }
        },
        "/account/ledger": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["account"],
                "summary": "Credit history",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LedgerEntry"}}}}
            }
        },
        "/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Browse items",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Item"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List an item",
                "parameters": [
                    {"description": "Item", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.CreateItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Item"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/services.ErrorResponse"}}
                }
            }
        },
        "/items/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Search items",
                "parameters": [{"type": "string", "description": "Search words", "name": "q", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Item"}}}}
            }
        },
        "/items/{itemId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Get item",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "itemId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Item"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/services.ErrorResponse"}}
                }
            }
        },
        "/items/{itemId}/availability": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Check availability",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "itemId", "in": "path", "required": true},
                    {"type": "string", "description": "Start date (YYYY-MM-DD)", "name": "start", "in": "query", "required": true},
                    {"type": "string", "description": "End date (YYYY-MM-DD)", "name": "end", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/items/{itemId}/quote": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Price quote",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "itemId", "in": "path", "required": true},
                    {"type": "string", "description": "Start date (YYYY-MM-DD)", "name": "start", "in": "query", "required": true},
                    {"type": "string", "description": "End date (YYYY-MM-DD)", "name": "end", "in": "query", "required": true},
                    {"type": "string", "description": "Price as of this date (YYYY-MM-DD)", "name": "asOf", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Quote"}}}
            }
        },
        "/items/{itemId}/bookings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Item calendar",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "itemId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.DateRange"}}}}
            }
        },
        "/items/{itemId}/favourite": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["favourites"],
                "summary": "Favourite an item",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "itemId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["favourites"],
                "summary": "Unfavourite an item",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "itemId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/favourites": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["favourites"],
                "summary": "My favourites",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Item"}}}}
            }
        },
        "/rentals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rentals"],
                "summary": "My rentals",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Booking"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rentals"],
                "summary": "Rent an item",
                "parameters": [
                    {"description": "Rental request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RentalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Booking"}},
                    "400": {"description": "Invalid request or date range", "schema": {"$ref": "#/definitions/services.ErrorResponse"}},
                    "402": {"description": "Insufficient credits", "schema": {"$ref": "#/definitions/services.ErrorResponse"}},
                    "403": {"description": "Own item", "schema": {"$ref": "#/definitions/services.ErrorResponse"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/services.ErrorResponse"}},
                    "409": {"description": "Dates unavailable", "schema": {"$ref": "#/definitions/services.ErrorResponse"}},
                    "503": {"description": "Transaction failed, retry", "schema": {"$ref": "#/definitions/services.ErrorResponse"}}
                }
            }
        },
        "/rentals/{reference}/pass": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rentals"],
                "summary": "Booking pass",
                "parameters": [{"type": "string", "description": "Booking reference", "name": "reference", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/services.BookingPass"}}}
            }
        },
        "/rentals/verify": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rentals"],
                "summary": "Verify booking pass",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Booking"}}}
            }
        }
    },
    "definitions": {
        "handlers.RentalRequest": {
            "type": "object",
            "required": ["endDate", "itemId", "startDate"],
            "properties": {
                "endDate": {"type": "string", "example": "2024-01-12"},
                "itemId": {"type": "integer", "example": 1},
                "startDate": {"type": "string", "example": "2024-01-10"}
            }
        },
        "models.Booking": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "credits": {"type": "integer"},
                "endDate": {"type": "string"},
                "id": {"type": "integer"},
                "itemId": {"type": "integer"},
                "reference": {"type": "string"},
                "renterId": {"type": "integer"},
                "startDate": {"type": "string"}
            }
        },
        "models.DateRange": {
            "type": "object",
            "properties": {
                "endDate": {"type": "string"},
                "startDate": {"type": "string"}
            }
        },
        "models.Item": {
            "type": "object",
            "properties": {
                "brand": {"type": "string", "example": "Zara"},
                "category": {"type": "string", "example": "Dress"},
                "colour": {"type": "string", "example": "Blue"},
                "id": {"type": "integer", "example": 1},
                "imageFile": {"type": "string", "example": "default.png"},
                "minimumCredits": {"type": "integer", "example": 100},
                "ownerId": {"type": "integer", "example": 7},
                "size": {"type": "string", "example": "M"}
            }
        },
        "models.LedgerEntry": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "balanceAfter": {"type": "integer"},
                "bookingRef": {"type": "string"},
                "createdAt": {"type": "string"},
                "entryType": {"type": "string"},
                "id": {"type": "integer"},
                "userId": {"type": "integer"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "creditBalance": {"type": "integer", "example": 500},
                "id": {"type": "integer", "example": 1},
                "username": {"type": "string", "example": "janedoe"}
            }
        },
        "services.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/models.User"}
            }
        },
        "services.BookingPass": {
            "type": "object",
            "properties": {
                "booking": {"$ref": "#/definitions/models.Booking"},
                "payload": {"type": "string"},
                "qrImage": {"type": "string"},
                "reference": {"type": "string"}
            }
        },
        "services.CreateItemRequest": {
            "type": "object",
            "required": ["category", "colour", "minimumCredits", "size"],
            "properties": {
                "brand": {"type": "string", "example": "zara"},
                "category": {"type": "string", "example": "Dress"},
                "colour": {"type": "string", "example": "Blue"},
                "imageFile": {"type": "string", "example": "dress.png"},
                "minimumCredits": {"type": "integer", "example": 100},
                "size": {"type": "string", "example": "M"}
            }
        },
        "services.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "error": {"type": "string"}
            }
        },
        "services.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "password123"},
                "username": {"type": "string", "example": "janedoe"}
            }
        },
        "services.Quote": {
            "type": "object",
            "properties": {
                "baseCredits": {"type": "integer", "example": 100},
                "demandDays": {"type": "integer", "example": 30},
                "demandSurcharge": {"type": "integer", "example": 5},
                "durationSurcharge": {"type": "integer", "example": 10},
                "favouriteCount": {"type": "integer", "example": 15},
                "itemId": {"type": "integer", "example": 1},
                "period": {"$ref": "#/definitions/models.DateRange"},
                "popularitySurcharge": {"type": "integer", "example": 2},
                "rentalDays": {"type": "integer", "example": 2},
                "total": {"type": "integer", "example": 117}
            }
        },
        "services.RegisterRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "password123"},
                "username": {"type": "string", "example": "janedoe"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Closetshare API",
	Description:      "Peer-to-peer clothing rental marketplace paid in credits",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
