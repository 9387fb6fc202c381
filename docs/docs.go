// Package docs is generated by swag from the controller annotations. Regenerate with
// `swag init -g cmd/api/main.go -o docs`.
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
        "/events": {
            "get": {
                "description": "Returns events dated now or later, ordered by date, with their city and state when they have an address.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List upcoming events",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Page number (0-based)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size (max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "data contains items and pagination", "schema": {"$ref": "#/definitions/controllers.ListEventsSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "description": "Create an event from a multipart form. Non-remote events need city and uf. The optional image is uploaded to object storage; if the upload fails the event is still created without an image URL.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create a new event",
                "parameters": [
                    {"type": "string", "description": "Event title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Event description", "name": "description", "in": "formData"},
                    {"type": "integer", "description": "Event date in milliseconds since the Unix epoch", "name": "date", "in": "formData", "required": true},
                    {"type": "string", "description": "Event URL", "name": "event_url", "in": "formData", "required": true},
                    {"type": "boolean", "description": "Whether the event is remote", "name": "remote", "in": "formData"},
                    {"type": "string", "description": "City (required when not remote)", "name": "city", "in": "formData"},
                    {"type": "string", "description": "State code (required when not remote)", "name": "uf", "in": "formData"},
                    {"type": "file", "description": "Event image", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "data contains the created event", "schema": {"$ref": "#/definitions/controllers.CreateEventSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "413": {"description": "error.code: payload_too_large", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/filter": {
            "get": {
                "description": "Returns events matching every given criterion. Text criteria match case-sensitively anywhere in the value; dates bound the event date inclusively. start_date defaults to the Unix epoch and end_date to now.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Search events",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Page number (0-based)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size (max 100)", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "Part of the title", "name": "title", "in": "query"},
                    {"type": "string", "description": "Part of the city", "name": "city", "in": "query"},
                    {"type": "string", "description": "Part of the state code", "name": "uf", "in": "query"},
                    {"type": "string", "description": "Lower bound, RFC3339 or YYYY-MM-DD", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "Upper bound, RFC3339 or YYYY-MM-DD (whole day)", "name": "end_date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "data contains items and pagination", "schema": {"$ref": "#/definitions/controllers.ListEventsSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}": {
            "get": {
                "description": "Returns the event with its city, state and the coupons that are still valid.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get event details",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the event details", "schema": {"$ref": "#/definitions/controllers.GetEventDetailsSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}/coupons": {
            "get": {
                "description": "Returns the event's coupons that have not expired, ordered by expiry.",
                "produces": ["application/json"],
                "tags": ["coupons"],
                "summary": "List active coupons of an event",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the active coupons", "schema": {"$ref": "#/definitions/controllers.ListCouponsSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "description": "Creates a discount coupon for the event. valid is the expiry instant in milliseconds since the Unix epoch.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["coupons"],
                "summary": "Add a coupon to an event",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true},
                    {"description": "Coupon data", "name": "coupon", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateCouponRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the created coupon", "schema": {"$ref": "#/definitions/controllers.CreateCouponSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.CreateCouponRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "discount": {"type": "string"},
                "valid": {"description": "Valid is the expiry instant in milliseconds since the Unix epoch.", "type": "integer"}
            }
        },
        "controllers.CreateCouponSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Coupon"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.CreateEventSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Event"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.EventPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.EventSummary"}},
                "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
            }
        },
        "controllers.GetEventDetailsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.EventDetails"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListCouponsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.Coupon"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListEventsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.EventPage"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "domain.Coupon": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "discount": {"type": "string"},
                "event_id": {"type": "string"},
                "id": {"type": "string"},
                "valid": {"type": "string"}
            }
        },
        "domain.CouponView": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "discount": {"type": "string"},
                "valid_until": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "description": {"type": "string"},
                "event_url": {"type": "string"},
                "id": {"type": "string"},
                "img_url": {"type": "string"},
                "remote": {"type": "boolean"},
                "title": {"type": "string"}
            }
        },
        "domain.EventDetails": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "coupons": {"type": "array", "items": {"$ref": "#/definitions/domain.CouponView"}},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "event_url": {"type": "string"},
                "id": {"type": "string"},
                "img_url": {"type": "string"},
                "remote": {"type": "boolean"},
                "title": {"type": "string"},
                "uf": {"type": "string"}
            }
        },
        "domain.EventSummary": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "event_url": {"type": "string"},
                "id": {"type": "string"},
                "img_url": {"type": "string"},
                "remote": {"type": "boolean"},
                "title": {"type": "string"},
                "uf": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "helpers.PaginationMeta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Eventhub API",
	Description:      "Publishes events with optional addresses and images, and manages discount coupons per event.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
