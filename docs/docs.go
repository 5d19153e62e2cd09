// Package docs registers the OpenAPI description of the photo API with swag.
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
        "/photos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Photos"],
                "summary": "List all photos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/photo.Photo"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Photos"],
                "summary": "Create a metadata-only photo record",
                "parameters": [
                    {"description": "Filename", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/photo.FilenameRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/photo.Photo"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/photos/id/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Photos"],
                "summary": "Get photo metadata by ID",
                "parameters": [{"type": "integer", "description": "Photo ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/photo.Photo"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "put": {
                "description": "Changes the stored filename of the record only; the file on disk is not moved.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Photos"],
                "summary": "Rename a photo record",
                "parameters": [
                    {"type": "integer", "description": "Photo ID", "name": "id", "in": "path", "required": true},
                    {"description": "New filename", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/photo.FilenameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/photo.Photo"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "delete": {
                "description": "Removes the database record only. The stored file is kept.",
                "produces": ["application/json"],
                "tags": ["Photos"],
                "summary": "Delete a photo record by ID",
                "parameters": [{"type": "integer", "description": "Photo ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/photo.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/photos/file/{filename}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Photos"],
                "summary": "Get photo metadata by filename",
                "parameters": [{"type": "string", "description": "Stored filename", "name": "filename", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/photo.Photo"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "delete": {
                "description": "Removes the database record only. The stored file is kept.",
                "produces": ["application/json"],
                "tags": ["Photos"],
                "summary": "Delete a photo record by filename",
                "parameters": [{"type": "string", "description": "Stored filename", "name": "filename", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/photo.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/photos/upload": {
            "post": {
                "description": "Stores the file under a generated UUID name, or under its original name when useOriginalName is true, then records it.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Photos"],
                "summary": "Upload an image",
                "parameters": [
                    {"type": "file", "description": "Image file (jpg, jpeg, png, gif, webp, heic)", "name": "file", "in": "formData", "required": true},
                    {"type": "boolean", "description": "Keep the client filename", "name": "useOriginalName", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/photo.UploadResult"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": true}},
                    "413": {"description": "Request Entity Too Large", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/photos/download/{filename}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["Photos"],
                "summary": "Download a stored image",
                "parameters": [{"type": "string", "description": "Stored filename", "name": "filename", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "photo.Photo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "filename": {"type": "string"}
            }
        },
        "photo.FilenameRequest": {
            "type": "object",
            "required": ["filename"],
            "properties": {
                "filename": {"type": "string", "maxLength": 255, "example": "sunset.jpg"}
            }
        },
        "photo.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Photo with ID 1 deleted successfully."}
            }
        },
        "photo.UploadResult": {
            "type": "object",
            "properties": {
                "photo": {"$ref": "#/definitions/photo.Photo"},
                "originalFilename": {"type": "string"},
                "storedFilename": {"type": "string"},
                "fileSize": {"type": "integer"},
                "uploadPath": {"type": "string"}
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
	Title:            "Photo API",
	Description:      "Stores uploaded images on disk and keeps their filenames in a photos table.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
