package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Executive Consultation API",
        "description": "Consultation form intake and administrative review",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Consultations", "description": "Form submissions and review"},
        {"name": "Status", "description": "Diagnostic status checks"},
        {"name": "System", "description": "Liveness and readiness"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["System"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RootMessage"}}
                }
            }
        },
        "/consultation": {
            "post": {
                "tags": ["Consultations"],
                "summary": "Submit a consultation request",
                "description": "Always answers 200; success=false signals a rejected or failed submission.",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateConsultationRequest"}}
                ],
                "responses": {
                    "200": {"description": "Outcome", "schema": {"$ref": "#/definitions/ConsultationSubmitResponse"}}
                }
            }
        },
        "/consultations": {
            "get": {
                "tags": ["Consultations"],
                "summary": "List consultations",
                "description": "Newest first, at most 100. An unknown status or store failure yields an empty list.",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["new", "contacted", "in_progress", "closed"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Consultation"}}}
                }
            }
        },
        "/consultations/export": {
            "get": {
                "tags": ["Consultations"],
                "summary": "Export consultations as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["new", "contacted", "in_progress", "closed"]}
                ],
                "responses": {
                    "200": {"description": "File download", "schema": {"type": "file"}},
                    "400": {"description": "Unknown format or status", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/consultation/{id}": {
            "get": {
                "tags": ["Consultations"],
                "summary": "Get a consultation",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Consultation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/status": {
            "get": {
                "tags": ["Status"],
                "summary": "List status checks",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StatusCheck"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Status"],
                "summary": "Record a status check",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStatusCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusCheck"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "RootMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Executive consultation API is running"}
            }
        },
        "CreateConsultationRequest": {
            "type": "object",
            "required": ["name", "email", "company", "title", "inquiry_type", "message"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 100},
                "email": {"type": "string", "format": "email"},
                "company": {"type": "string", "minLength": 2, "maxLength": 100},
                "title": {"type": "string", "minLength": 2, "maxLength": 100},
                "inquiry_type": {"type": "string", "enum": ["advisory", "interim", "transformation", "board", "consulting", "other"]},
                "message": {"type": "string", "minLength": 10, "maxLength": 2000}
            }
        },
        "FieldViolation": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "rule": {"type": "string"},
                "param": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "ConsultationSubmitResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "consultation_id": {"type": "string", "x-nullable": true},
                "estimated_response_time": {"type": "string", "x-nullable": true, "example": "24 hours"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/FieldViolation"}}
            }
        },
        "Consultation": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "company": {"type": "string"},
                "title": {"type": "string"},
                "inquiry_type": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string", "enum": ["new", "contacted", "in_progress", "closed"]},
                "submitted_at": {"type": "string", "format": "date-time"},
                "contacted_at": {"type": "string", "format": "date-time", "x-nullable": true},
                "notes": {"type": "string", "x-nullable": true},
                "priority": {"type": "string", "x-nullable": true}
            }
        },
        "CreateStatusCheckRequest": {
            "type": "object",
            "required": ["client_name"],
            "properties": {
                "client_name": {"type": "string", "minLength": 1, "maxLength": 100}
            }
        },
        "StatusCheck": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "client_name": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "object"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
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
