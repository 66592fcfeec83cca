// Package docs holds the hand-maintained Swagger description served under /swagger.
// Keep the paths in step with handler.RegisterRoutes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/works": {
            "get": {
                "produces": ["application/json"],
                "tags": ["works"],
                "summary": "List works",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/works/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["works"],
                "summary": "List catalogue categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/works/categories/{category}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["works"],
                "summary": "List works of a category",
                "parameters": [{"type": "string", "description": "Category name", "name": "category", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/works/{workId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["works"],
                "summary": "Get a work",
                "parameters": [{"type": "string", "description": "Work slug", "name": "workId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/summa": {
            "get": {
                "produces": ["application/json"],
                "tags": ["summa"],
                "summary": "Get the document summary",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/summa/outline": {
            "get": {
                "produces": ["application/json"],
                "tags": ["summa"],
                "summary": "Get the navigation outline",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/summa/totals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["summa"],
                "summary": "Compare declared and actual totals",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/summa/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["summa"],
                "summary": "Reload the document",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/summa/{partId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["summa"],
                "summary": "Get a part",
                "parameters": [{"type": "string", "description": "Part identifier", "name": "partId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/summa/{partId}/{questionId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["summa"],
                "summary": "Get a question",
                "parameters": [
                    {"type": "string", "description": "Part identifier", "name": "partId", "in": "path", "required": true},
                    {"type": "integer", "description": "Question number", "name": "questionId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/summa/{partId}/{questionId}/{articleId}": {
            "get": {
                "produces": ["application/json", "text/markdown"],
                "tags": ["summa"],
                "summary": "Get an article",
                "parameters": [
                    {"type": "string", "description": "Part identifier", "name": "partId", "in": "path", "required": true},
                    {"type": "integer", "description": "Question number", "name": "questionId", "in": "path", "required": true},
                    {"type": "integer", "description": "Article number", "name": "articleId", "in": "path", "required": true},
                    {"type": "string", "default": "es", "description": "Content language", "name": "lang", "in": "query"},
                    {"type": "string", "default": "json", "description": "json or markdown", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Summa Reader API",
	Description:      "Read-only navigation API for the Summa Theologica.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
