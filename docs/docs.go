// Package docs holds the OpenAPI description served at /swagger.
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
        "/roadmaps": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["roadmaps"],
                "summary": "List archived roadmaps of the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/archive.Roadmap"}}},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json", "audio/mpeg", "application/pdf"],
                "tags": ["roadmaps"],
                "summary": "Generate a study roadmap",
                "parameters": [
                    {"description": "Learner profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/roadmap.GenerateRoadmapDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/roadmap.RoadmapResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/roadmap.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/roadmap.RoadmapResponse"}}
                }
            }
        },
        "/roadmaps/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["roadmaps"],
                "summary": "Get an archived roadmap",
                "parameters": [{"type": "string", "description": "Roadmap ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/archive.Roadmap"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["roadmaps"],
                "summary": "Delete an archived roadmap",
                "parameters": [{"type": "string", "description": "Roadmap ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "roadmap.GenerateRoadmapDTO": {
            "type": "object",
            "properties": {
                "grade": {"type": "string", "example": "5"},
                "subject": {"type": "string", "example": "Math"},
                "daily_minutes": {"type": "integer", "example": 30},
                "wants_audio": {"type": "boolean"},
                "wants_visuals": {"type": "boolean"},
                "format": {"type": "string", "enum": ["text", "audio", "pdf"], "example": "text"}
            }
        },
        "roadmap.RoadmapResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "roadmap": {"type": "string"},
                "failed": {"type": "boolean"},
                "reason": {"type": "string", "enum": ["no_candidates", "empty_text", "remote_error"]},
                "model": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "roadmap.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "archive.Roadmap": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "owner_id": {"type": "string"},
                "grade": {"type": "string"},
                "subject": {"type": "string"},
                "daily_minutes": {"type": "integer"},
                "wants_audio": {"type": "boolean"},
                "wants_visuals": {"type": "boolean"},
                "format": {"type": "string"},
                "content": {"type": "string"},
                "model": {"type": "string"},
                "created_at": {"type": "string"}
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Study Roadmap API",
	Description:      "Generates personalized study roadmaps as text, MP3 audio or PDF.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
