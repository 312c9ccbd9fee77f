package ai

// Result is the JSON object produced for an explained topic. A
// well-behaved completion carries the six canonical keys: what_it_is,
// human_connection, social_influence, relevant_studies,
// confidence_level ("High", "Moderate" or "Preliminary") and
// confidence_reason. Adherence is not enforced; whatever JSON object
// the model returned is handed back exactly as parsed.
type Result map[string]any

// fallbackResult wraps an unparseable completion in the fixed six-key
// shape so callers always receive a complete result.
func fallbackResult(cleaned string) Result {
	return Result{
		"what_it_is":        "Error parsing AI response.",
		"human_connection":  cleaned,
		"social_influence":  "",
		"relevant_studies":  "",
		"confidence_level":  "Low",
		"confidence_reason": "Format error",
	}
}
