// Package docs holds the OpenAPI 2.0 document served under /swagger when
// SWAGGER_ENABLED is set. It mirrors the godoc annotations on the handlers;
// regenerate with `swag init -g cmd/server/main.go -o docs` after changing them.
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
        "/software": {
            "get": {
                "operationId": "listSoftware",
                "summary": "Filter the catalog",
                "tags": ["Software"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "description": "Case-insensitive term matched against name and description"},
                    {"type": "string", "name": "category", "in": "query", "description": "Exact category, or all"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ListSoftwareResponse"}}
                }
            }
        },
        "/software/{id}": {
            "get": {
                "operationId": "getSoftware",
                "summary": "Get software by id or slug",
                "tags": ["Software"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true, "description": "Id or slug"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SoftwareResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/software/{id}/related": {
            "get": {
                "operationId": "relatedSoftware",
                "summary": "Entries similar to this one",
                "tags": ["Software"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true, "description": "Id or slug"},
                    {"type": "integer", "name": "k", "in": "query", "description": "Result count (1..20, default 3)"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RelatedResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/software/{id}/reviews": {
            "post": {
                "operationId": "addReview",
                "summary": "Submit a review",
                "tags": ["Software"],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true, "description": "Id or slug"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ReviewInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.SoftwareResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Persist failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/software/{id}/downloads": {
            "post": {
                "operationId": "recordDownload",
                "summary": "Count a download",
                "tags": ["Software"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true, "description": "Id or slug"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SoftwareResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/taxonomies": {
            "get": {
                "operationId": "taxonomies",
                "summary": "Categories, authors, platforms, licenses and requirements",
                "tags": ["Software"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Taxonomies"}}}
            }
        },
        "/view": {
            "get": {
                "operationId": "getView",
                "summary": "Current view state of a session",
                "tags": ["View"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "X-Session-ID", "in": "header", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ViewResponse"}},
                    "400": {"description": "Missing session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/view/select": {
            "post": {
                "operationId": "selectSoftware",
                "summary": "Open the detail view",
                "tags": ["View"],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-Session-ID", "in": "header", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SelectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ViewResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Invalid transition", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/view/back": {
            "post": {
                "operationId": "back",
                "summary": "Return from detail to catalog",
                "tags": ["View"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "X-Session-ID", "in": "header", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ViewResponse"}},
                    "409": {"description": "Invalid transition", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/view/admin": {
            "post": {
                "operationId": "toggleAdmin",
                "summary": "Enter or leave the admin panel",
                "tags": ["View"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "X-Session-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ViewResponse"}}}
            }
        },
        "/view/subview": {
            "put": {
                "operationId": "setSubview",
                "summary": "Switch the admin tab",
                "tags": ["View"],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-Session-ID", "in": "header", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SubviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ViewResponse"}},
                    "400": {"description": "Unknown subview", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Invalid transition", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/view/filter": {
            "put": {
                "operationId": "setFilter",
                "summary": "Store the catalog search inputs",
                "tags": ["View"],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-Session-ID", "in": "header", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.FilterRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ViewResponse"}}}
            }
        },
        "/admin/dashboard": {
            "get": {
                "operationId": "adminDashboard",
                "summary": "Catalog totals",
                "tags": ["Admin"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "X-Admin-Token", "in": "header"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Dashboard"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/software": {
            "put": {
                "operationId": "saveSoftware",
                "summary": "Create or update software",
                "tags": ["Admin"],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-Admin-Token", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Software"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SoftwareResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Persist failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/software/{id}": {
            "delete": {
                "operationId": "deleteSoftware",
                "summary": "Delete software",
                "tags": ["Admin"],
                "parameters": [
                    {"type": "string", "name": "X-Admin-Token", "in": "header"},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/software/{id}/media": {
            "post": {
                "operationId": "uploadMedia",
                "summary": "Attach logo and screenshots",
                "tags": ["Admin"],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-Admin-Token", "in": "header"},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "file", "name": "logo", "in": "formData"},
                    {"type": "file", "name": "screenshots", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SoftwareResponse"}},
                    "400": {"description": "No files", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "415": {"description": "Not an image", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/categories": {
            "post": {
                "operationId": "addCategory",
                "summary": "Add a category",
                "tags": ["Admin"],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-Admin-Token", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.NameRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.NameRequest"}},
                    "409": {"description": "Duplicate", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/categories/{name}": {
            "delete": {
                "operationId": "deleteCategory",
                "summary": "Delete a category and reassign its entries",
                "tags": ["Admin"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-Admin-Token", "in": "header"},
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DeleteCategoryResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/authors": {
            "post": {
                "operationId": "addAuthor",
                "summary": "Add an author",
                "tags": ["Admin"],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-Admin-Token", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.NameRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.NameRequest"}},
                    "409": {"description": "Duplicate", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/reset": {
            "post": {
                "operationId": "resetCatalog",
                "summary": "Erase persisted slots and restore defaults",
                "tags": ["Admin"],
                "parameters": [{"type": "string", "name": "X-Admin-Token", "in": "header"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Persist failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Review": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "author": {"type": "string"},
                "rating": {"type": "integer"},
                "comment": {"type": "string"},
                "date": {"type": "string", "example": "2024-05-06"}
            }
        },
        "domain.ReviewInput": {
            "type": "object",
            "required": ["author", "rating"],
            "properties": {
                "author": {"type": "string", "example": "Jane Doe"},
                "rating": {"type": "integer", "maximum": 5, "minimum": 1, "example": 5},
                "comment": {"type": "string", "example": "Indispensable."}
            }
        },
        "domain.Software": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"},
                "logo": {"type": "string"},
                "screenshots": {"type": "array", "items": {"type": "string"}},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "detailedDescription": {"type": "string"},
                "rating": {"type": "number"},
                "version": {"type": "string"},
                "reviews": {"type": "array", "items": {"$ref": "#/definitions/domain.Review"}},
                "downloads": {"type": "integer"},
                "size": {"type": "number"},
                "unit": {"type": "string", "enum": ["KB", "MB", "GB"]},
                "downloadUrl": {"type": "string"},
                "buyUrl": {"type": "string"},
                "author": {"type": "string"},
                "platform": {"type": "string"},
                "license": {"type": "string"},
                "requirements": {"type": "string"},
                "isFeatured": {"type": "boolean"},
                "isSponsored": {"type": "boolean"}
            }
        },
        "media.Logo": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["image", "icon"]},
                "value": {"type": "string"}
            }
        },
        "handlers.SoftwareResponse": {
            "type": "object",
            "allOf": [{"$ref": "#/definitions/domain.Software"}],
            "properties": {"resolvedLogo": {"$ref": "#/definitions/media.Logo"}}
        },
        "handlers.ListSoftwareResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handlers.SoftwareResponse"}},
                "total": {"type": "integer"},
                "q": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "handlers.RelatedResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}}
            }
        },
        "handlers.NameRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 120, "minLength": 1}}
        },
        "handlers.SelectRequest": {
            "type": "object",
            "required": ["software_id"],
            "properties": {"software_id": {"type": "string"}}
        },
        "handlers.SubviewRequest": {
            "type": "object",
            "required": ["subview"],
            "properties": {"subview": {"type": "string", "enum": ["dashboard", "software", "categories"]}}
        },
        "handlers.FilterRequest": {
            "type": "object",
            "properties": {"q": {"type": "string"}, "category": {"type": "string"}}
        },
        "handlers.ViewResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "object"},
                "software": {"$ref": "#/definitions/handlers.SoftwareResponse"},
                "results": {"$ref": "#/definitions/handlers.ListSoftwareResponse"}
            }
        },
        "handlers.DeleteCategoryResponse": {
            "type": "object",
            "properties": {"moved": {"type": "integer"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "code": {"type": "string", "example": "not_found"},
                "message": {"type": "string", "example": "resource not found"}
            }
        },
        "services.Taxonomies": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "authors": {"type": "array", "items": {"type": "string"}},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "licenses": {"type": "array", "items": {"type": "string"}},
                "requirements": {"type": "array", "items": {"type": "string"}}
            }
        },
        "services.Dashboard": {
            "type": "object",
            "properties": {
                "software_count": {"type": "integer"},
                "category_count": {"type": "integer"},
                "author_count": {"type": "integer"},
                "review_count": {"type": "integer"},
                "total_downloads": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Soft Portal API",
	Description:      "Software catalog browsing, reviews and administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
