package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Vidro Absolut Study API",
        "description": "Checkout, sales panel and study planner for the ENEM preparation course",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Checkout", "description": "Public purchase form and CPF check"},
        {"name": "Admin", "description": "Sales panel"},
        {"name": "Study", "description": "Study mode selection"},
        {"name": "Study Cycle", "description": "Weighted weekly study cycle"},
        {"name": "Routine", "description": "Fixed weekly routine"}
    ],
    "paths": {
        "/cpf/validate": {
            "get": {
                "tags": ["Checkout"],
                "summary": "Check and mask a CPF",
                "parameters": [{"name": "value", "in": "query", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/checkout": {
            "post": {
                "tags": ["Checkout"],
                "summary": "Register a buyer and get PIX instructions",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckoutRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid form", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["Admin"],
                "summary": "Admin panel login",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdminLoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/customers": {
            "get": {
                "tags": ["Admin"],
                "summary": "List registered customers with revenue summary",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete every registration",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/customers/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Download customers as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {"200": {"description": "File"}}
            }
        },
        "/admin/metrics": {
            "get": {
                "tags": ["Admin"],
                "summary": "Runtime metrics summary",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/preferences": {
            "get": {
                "tags": ["Study"],
                "summary": "Current study preferences",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Payment pending", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/study/mode": {
            "put": {
                "tags": ["Study"],
                "summary": "Choose routine or cycle mode",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectModeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/cycle": {
            "get": {
                "tags": ["Study Cycle"],
                "summary": "Weekly budget, subjects and progress",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/cycle/budget": {
            "put": {
                "tags": ["Study Cycle"],
                "summary": "Set weekly hours and reallocate",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WeeklyBudgetRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/cycle/subjects": {
            "post": {
                "tags": ["Study Cycle"],
                "summary": "Add subject",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddSubjectRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/cycle/subjects/{id}": {
            "delete": {
                "tags": ["Study Cycle"],
                "summary": "Remove subject",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found"}}
            }
        },
        "/study/cycle/subjects/{id}/weight": {
            "patch": {
                "tags": ["Study Cycle"],
                "summary": "Change subject weight",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateWeightRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/cycle/subjects/{id}/toggle": {
            "post": {
                "tags": ["Study Cycle"],
                "summary": "Mark the next hour of a subject",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/ToggleHourRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/cycle/reset": {
            "post": {
                "tags": ["Study Cycle"],
                "summary": "Reset completed hours",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/routine": {
            "get": {
                "tags": ["Routine"],
                "summary": "List routine tasks",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Routine"],
                "summary": "Add routine task",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRoutineTaskRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/study/routine/{id}": {
            "patch": {
                "tags": ["Routine"],
                "summary": "Rename task",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RenameRoutineTaskRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Routine"],
                "summary": "Delete task",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/study/routine/{id}/toggle": {
            "post": {
                "tags": ["Routine"],
                "summary": "Toggle a weekday of a task",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleDayRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "definitions": {
        "CheckoutRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "cpf": {"type": "string", "example": "529.982.247-25"},
                "telegram": {"type": "string", "example": "@aluno"}
            },
            "required": ["first_name", "last_name", "cpf", "telegram"]
        },
        "AdminLoginRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}},
            "required": ["password"]
        },
        "SelectModeRequest": {
            "type": "object",
            "properties": {"study_mode": {"type": "string", "enum": ["routine", "cycle"]}},
            "required": ["study_mode"]
        },
        "WeeklyBudgetRequest": {
            "type": "object",
            "properties": {
                "weekly_hours": {"type": "integer", "minimum": 1, "maximum": 80},
                "target_university": {"type": "string"}
            },
            "required": ["weekly_hours"]
        },
        "AddSubjectRequest": {
            "type": "object",
            "properties": {
                "subject_name": {"type": "string"},
                "weight": {"type": "integer", "minimum": 1, "maximum": 10}
            },
            "required": ["subject_name"]
        },
        "UpdateWeightRequest": {
            "type": "object",
            "properties": {"weight": {"type": "integer", "minimum": 1, "maximum": 10}},
            "required": ["weight"]
        },
        "ToggleHourRequest": {
            "type": "object",
            "properties": {"hour_index": {"type": "integer", "minimum": 0}}
        },
        "CreateRoutineTaskRequest": {
            "type": "object",
            "properties": {
                "task_name": {"type": "string"},
                "time_slot": {"type": "string"}
            },
            "required": ["task_name"]
        },
        "RenameRoutineTaskRequest": {
            "type": "object",
            "properties": {"task_name": {"type": "string"}}
        },
        "ToggleDayRequest": {
            "type": "object",
            "properties": {"day": {"type": "string", "enum": ["monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"]}},
            "required": ["day"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
