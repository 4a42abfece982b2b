package report

// Schema is the JSON Schema (Draft 2020-12) for the ontostats JSON
// report. It documents the structure produced by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/ontostats/report.schema.json",
  "title": "Ontostats Dataset Report",
  "description": "Output schema for ontostats stats --format=json",
  "type": "object",
  "required": ["version", "dataset", "num_models", "statistics", "cross_tab", "invalid_stereotypes", "models_by_year"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "dataset": {
      "type": "string",
      "description": "Dataset name"
    },
    "num_models": {
      "type": "integer",
      "minimum": 0
    },
    "statistics": {
      "type": "object",
      "description": "Flat metric-name to scalar mapping",
      "additionalProperties": { "type": "number" }
    },
    "cross_tab": {
      "type": "object",
      "required": ["class", "relation"],
      "properties": {
        "class": { "$ref": "#/$defs/CrossTab" },
        "relation": { "$ref": "#/$defs/CrossTab" }
      }
    },
    "invalid_stereotypes": {
      "type": "object",
      "required": ["class", "relation"],
      "properties": {
        "class": { "$ref": "#/$defs/InvalidMap" },
        "relation": { "$ref": "#/$defs/InvalidMap" }
      }
    },
    "models_by_year": {
      "type": "array",
      "items": { "$ref": "#/$defs/YearModelCount" }
    }
  },
  "$defs": {
    "GroupMetrics": {
      "type": "object",
      "required": ["af", "mc", "ratio_af", "ratio_mc"],
      "properties": {
        "af": { "type": "integer", "minimum": 0 },
        "mc": { "type": "integer", "minimum": 0 },
        "ratio_af": { "type": "number", "minimum": 0 },
        "ratio_mc": { "type": "number", "minimum": 0 }
      }
    },
    "CrossTab": {
      "type": "object",
      "required": ["groups", "all_ontouml", "all_none", "all_other", "total_stereotypes", "total_models"],
      "properties": {
        "groups": {
          "type": "object",
          "description": "Eight-way category partition",
          "additionalProperties": { "$ref": "#/$defs/GroupMetrics" }
        },
        "all_ontouml": { "$ref": "#/$defs/GroupMetrics" },
        "all_none": { "$ref": "#/$defs/GroupMetrics" },
        "all_other": { "$ref": "#/$defs/GroupMetrics" },
        "total_stereotypes": { "type": "integer", "minimum": 0 },
        "total_models": { "type": "integer", "minimum": 0 }
      }
    },
    "InvalidMap": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["accumulated_frequency", "model_coverage"],
        "properties": {
          "accumulated_frequency": { "type": "integer", "minimum": 1 },
          "model_coverage": { "type": "integer", "minimum": 1 }
        }
      }
    },
    "YearModelCount": {
      "type": "object",
      "required": ["year", "num_models", "ratio"],
      "properties": {
        "year": { "type": "integer" },
        "num_models": { "type": "integer", "minimum": 1 },
        "ratio": { "type": "number", "minimum": 0, "maximum": 1 }
      }
    }
  }
}`
