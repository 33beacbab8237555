package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Education Admin Console API",
        "description": "Backend for the institute admin dashboard. Every authenticated response may carry pending notices.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "security": [{"BearerAuth": []}],
    "tags": [
        {"name": "Calendar", "description": "Live-class calendar view and deletion"},
        {"name": "Lists", "description": "Filterable resource lists with draft and applied filters"},
        {"name": "Inquiries", "description": "Admission inquiry board with local status edits"},
        {"name": "Authentication", "description": "Current principal and logout"},
        {"name": "Audit", "description": "Audit trail of dashboard mutations"},
        {"name": "System", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/me": {
            "get": {"tags": ["Authentication"], "summary": "Current principal", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "401": {"description": "Unauthorized"}}}
        },
        "/logout": {
            "post": {"tags": ["Authentication"], "summary": "Forget the session and drop the workspace", "responses": {"204": {"description": "No Content"}}}
        },
        "/notifications": {
            "get": {"tags": ["Authentication"], "summary": "Drain pending notices", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/audit-logs": {
            "get": {
                "tags": ["Audit"],
                "summary": "Own audit entries",
                "parameters": [
                    {"name": "resource", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "405": {"description": "Audit disabled"}}
            }
        },
        "/system/metrics": {
            "get": {"tags": ["System"], "summary": "Runtime counters", "responses": {"200": {"description": "OK"}}}
        },
        "/calendar": {
            "get": {"tags": ["Calendar"], "summary": "Rendered calendar view", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}}}}
        },
        "/calendar/mount": {
            "post": {"tags": ["Calendar"], "summary": "Reset to the current week and load sessions", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}}}}
        },
        "/calendar/toggle": {
            "post": {"tags": ["Calendar"], "summary": "Switch between week and month", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}}}}
        },
        "/calendar/today": {
            "post": {"tags": ["Calendar"], "summary": "Jump to today", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}}}}
        },
        "/calendar/prev": {
            "post": {"tags": ["Calendar"], "summary": "Previous week or month", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}}}}
        },
        "/calendar/next": {
            "post": {"tags": ["Calendar"], "summary": "Next week or month", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}}}}
        },
        "/calendar/select": {
            "post": {
                "tags": ["Calendar"],
                "summary": "Select a displayed day",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectDateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}}, "400": {"description": "Invalid or out of range date"}}
            }
        },
        "/calendar/sessions/{id}": {
            "delete": {
                "tags": ["Calendar"],
                "summary": "Delete a class session",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarEnvelope"}}, "502": {"description": "Upstream rejected the delete"}}
            }
        },
        "/calendar/export": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Export the displayed agenda",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {"200": {"description": "Attachment"}, "400": {"description": "Unknown format"}}
            }
        },
        "/inquiries/courses": {
            "get": {"tags": ["Inquiries"], "summary": "Distinct course interests", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}}
        },
        "/inquiries/{id}/status": {
            "patch": {
                "tags": ["Inquiries"],
                "summary": "Edit the local status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/InquiryStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}, "400": {"description": "Invalid status"}}
            },
            "delete": {
                "tags": ["Inquiries"],
                "summary": "Discard the local status edit",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}
            }
        },
        "/inquiries/{id}/status/save": {
            "post": {
                "tags": ["Inquiries"],
                "summary": "Persist the local status edit",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}, "502": {"description": "Save failed"}}
            }
        },
        "/{resource}": {
            "get": {
                "tags": ["Lists"],
                "summary": "Filtered list",
                "parameters": [{"$ref": "#/parameters/resource"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}
            },
            "post": {
                "tags": ["Lists"],
                "summary": "Create an item (writable resources only)",
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}, "400": {"description": "Validation failed"}}
            }
        },
        "/{resource}/mount": {
            "post": {"tags": ["Lists"], "summary": "Clear filters and reload", "parameters": [{"$ref": "#/parameters/resource"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/{resource}/filters/draft": {
            "put": {
                "tags": ["Lists"],
                "summary": "Set one draft filter value",
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterDraftRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}, "400": {"description": "Unknown field"}}
            }
        },
        "/{resource}/filters/apply": {
            "post": {"tags": ["Lists"], "summary": "Apply draft filters", "parameters": [{"$ref": "#/parameters/resource"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/{resource}/filters/revert": {
            "post": {"tags": ["Lists"], "summary": "Reset the draft to the applied filters", "parameters": [{"$ref": "#/parameters/resource"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/{resource}/filters": {
            "delete": {"tags": ["Lists"], "summary": "Clear all filters", "parameters": [{"$ref": "#/parameters/resource"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/{resource}/{id}": {
            "get": {
                "tags": ["Lists"],
                "summary": "One item",
                "parameters": [{"$ref": "#/parameters/resource"}, {"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["Lists"],
                "summary": "Update an item (writable resources only)",
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "delete": {
                "tags": ["Lists"],
                "summary": "Delete an item (writable resources only)",
                "parameters": [{"$ref": "#/parameters/resource"}, {"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}
            }
        }
    },
    "parameters": {
        "resource": {
            "name": "resource",
            "in": "path",
            "required": true,
            "type": "string",
            "enum": ["sessions", "inquiries", "courses", "users", "media", "announcements", "orders", "payments"]
        }
    },
    "definitions": {
        "SelectDateRequest": {
            "type": "object",
            "required": ["date"],
            "properties": {"date": {"type": "string", "format": "date"}}
        },
        "FilterDraftRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {"field": {"type": "string"}, "value": {"type": "string"}}
        },
        "InquiryStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "enum": ["pending", "approved", "rejected", "waitlisted"]}}
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Notice": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "level": {"type": "string", "enum": ["success", "error"]},
                "resource": {"type": "string"},
                "action": {"type": "string"},
                "message": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "ListMeta": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "error": {"type": "string"},
                "total": {"type": "integer"},
                "visible": {"type": "integer"},
                "fields": {"type": "array", "items": {"type": "string"}},
                "draft": {"type": "object", "additionalProperties": {"type": "string"}},
                "applied": {"type": "object", "additionalProperties": {"type": "string"}},
                "pending": {"type": "integer"}
            }
        },
        "CalendarDay": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "format": "date"},
                "weekday": {"type": "string"},
                "in_month": {"type": "boolean"},
                "is_today": {"type": "boolean"},
                "is_selected": {"type": "boolean"},
                "session_count": {"type": "integer"},
                "sessions": {"type": "array", "items": {"type": "object"}}
            }
        },
        "CalendarView": {
            "type": "object",
            "properties": {
                "state": {"type": "object"},
                "title": {"type": "string"},
                "range_from": {"type": "string", "format": "date"},
                "range_to": {"type": "string", "format": "date"},
                "status": {"type": "string"},
                "error": {"type": "string"},
                "empty": {"type": "boolean"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/CalendarDay"}},
                "selected": {"type": "object"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"},
                "notices": {"type": "array", "items": {"$ref": "#/definitions/Notice"}}
            }
        },
        "ListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object"}},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"$ref": "#/definitions/ListMeta"},
                "notices": {"type": "array", "items": {"$ref": "#/definitions/Notice"}}
            }
        },
        "CalendarEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/CalendarView"},
                "error": {"$ref": "#/definitions/APIError"},
                "notices": {"type": "array", "items": {"$ref": "#/definitions/Notice"}}
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
