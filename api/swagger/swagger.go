package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Summer Camp School API",
        "description": "Course-enrollment platform backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Users", "description": "Accounts and roles"},
        {"name": "Courses", "description": "Course offering and moderation"},
        {"name": "Selections", "description": "Checkout selections"},
        {"name": "Payments", "description": "Payment intents and records"},
        {"name": "Dashboard", "description": "Role dashboards and reports"},
        {"name": "Contact", "description": "Public contact inbox"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/login-user": {
            "post": {
                "tags": ["Users"],
                "summary": "Login or register by email",
                "responses": {
                    "200": {"description": "Existing user or insert result"},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/manage-user": {
            "get": {
                "tags": ["Users"],
                "summary": "List all users",
                "responses": {
                    "200": {"description": "User list"}
                }
            }
        },
        "/manage-user/update-role-admin/{userId}": {
            "patch": {
                "tags": ["Users"],
                "summary": "Set role to admin",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Update result"},
                    "400": {"description": "Malformed identifier"}
                }
            }
        },
        "/manage-user/update-role-instructor/{userId}": {
            "patch": {
                "tags": ["Users"],
                "summary": "Set role to instructor",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Update result"},
                    "400": {"description": "Malformed identifier"}
                }
            }
        },
        "/home/course": {
            "get": {
                "tags": ["Courses"],
                "summary": "Landing-page accepted courses (capped)",
                "responses": {
                    "200": {"description": "Course list"}
                }
            }
        },
        "/all-course": {
            "get": {
                "tags": ["Courses"],
                "summary": "All accepted courses",
                "responses": {
                    "200": {"description": "Course list"}
                }
            }
        },
        "/add-course": {
            "post": {
                "tags": ["Courses"],
                "summary": "Offer a new course (pending)",
                "responses": {
                    "201": {"description": "Insert result"},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/student/selected-course/create-payment-intent": {
            "post": {
                "tags": ["Payments"],
                "summary": "Create a payment intent",
                "responses": {
                    "200": {"description": "Client secret"},
                    "400": {"description": "Validation failure"},
                    "502": {"description": "Payment provider unavailable"}
                }
            }
        },
        "/admin-dashboard/statices": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Platform-wide statistics",
                "responses": {
                    "200": {"description": "Aggregated counts"}
                }
            }
        },
        "/contact-us/message": {
            "post": {
                "tags": ["Contact"],
                "summary": "Send a contact message",
                "responses": {
                    "201": {"description": "Insert result"},
                    "400": {"description": "Validation failure"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
