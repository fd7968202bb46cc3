package extract

import (
	"encoding/json"
	"strings"

	"github.com/joseph-ayodele/docfields/internal/schema"
)

// systemPrompt frames the assistant for the schema's domain. The wording is
// fixed per schema; only the domain varies.
func systemPrompt(s schema.Schema) string {
	return "You are an AI assistant specialized in " + s.Domain + ". Return the data as a JSON object."
}

// userPrompt is the single-turn instruction: the explicit field list with
// format hints, the source text, and the schema shape for grounding. The
// source text is passed through whole; length limits are the model client's
// concern, not ours.
func userPrompt(s schema.Schema, text string) string {
	var b strings.Builder

	b.WriteString("You are an AI assistant specialized in ")
	b.WriteString(s.Domain)
	b.WriteString(". Extract the following fields from the ")
	b.WriteString(strings.ToLower(s.Label))
	b.WriteString(" text: ")
	b.WriteString(fieldList(s))
	b.WriteString(". Return the data as a JSON object matching the schema below. ")
	b.WriteString("If a field is not found, omit it or set its value to null.")

	b.WriteString("\n\n")
	b.WriteString(s.Label)
	b.WriteString(" Text:\n")
	b.WriteString(text)

	b.WriteString("\n\n")
	b.WriteString(s.Label)
	b.WriteString(" JSON Schema:\n")
	b.WriteString(mustJSON(schema.BuildJSONSchema(s)))

	return b.String()
}

// genericPrompt is the open-ended instruction for unregistered types.
func genericPrompt(docType, text string) (systemMsg, userMsg string) {
	systemMsg = "You are an AI assistant for document parsing. " +
		"Extract key information from the provided document text and format it as a JSON object."

	var b strings.Builder
	b.WriteString("The following document is identified as a '")
	b.WriteString(docType)
	b.WriteString("'. Extract all key information and relevant entities from this document. ")
	b.WriteString("Structure the output as a JSON object with meaningful keys and values. ")
	b.WriteString("If there are lists (e.g., line items, multiple parties), represent them as JSON arrays.")
	b.WriteString("\n\nDocument Text:\n")
	b.WriteString(text)
	return systemMsg, b.String()
}

func fieldList(s schema.Schema) string {
	parts := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Hint != "" {
			parts = append(parts, f.Name+" ("+f.Hint+")")
		} else {
			parts = append(parts, f.Name)
		}
	}
	return strings.Join(parts, ", ")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
