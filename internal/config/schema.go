package config

// schemaJSON is the JSON Schema uvconfig.json files are validated against,
// compiled once, on the first call to Parse. It mirrors the shape of Config; keep the two in
// sync by hand.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "uvconfig.schema.json",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "sourceRoot": {
      "type": "string",
      "minLength": 1,
      "description": "Project source directory; not read by uvc commands."
    },
    "watchPatterns": {
      "type": "array",
      "items": { "type": "string", "minLength": 1 },
      "description": "Glob patterns for watched files; not read by uvc watch, which watches the file it is given."
    },
    "maxDepth": {
      "type": "integer",
      "minimum": 1,
      "description": "Tag-nesting recursion limit passed to parser.WithMaxDepth."
    },
    "cache": {
      "type": "boolean",
      "description": "Whether uvc ast should read/write a CBOR AST cache by default."
    }
  }
}`
