package provider

// GenericMockContent is returned when no canned text exists for a
// (contentType, language) pair.
const GenericMockContent = "Mock content generated successfully!"

// mockContent is the canned fallback text, keyed by content type then
// language. It covers every supported language for both content types.
var mockContent = map[string]map[string]string{
	"lyrics": {
		"hindi":   "तेरे इश्क में पागल हूँ मैं...",
		"tamil":   "அழகிக பாடல்கள் உலகில்...",
		"telugu":  "నీ ప్రేమలో పాడిపోయాను...",
		"bengali": "তোমার ভালোবাসার গান...",
		"marathi": "प्रेमाचे शब्द गात जातो...",
	},
	"dialogue": {
		"hindi":   `पिता: "बेटा, जिंदगी में सफलता पाने के लिए मेहनत करनी पड़ती है।" ...`,
		"tamil":   `தந்தை: "மகனே, வாழ்க்கையில் வேலை..."`,
		"telugu":  `తాత: "కొడుకు, జీవితంలో విజయం..."`,
		"bengali": `বাবা: "মা, জীবনে সফল হতে হলে..."`,
		"marathi": `वडिल: "मुलगा, जीवनात यशस्वी..."`,
	},
}

// MockContent returns the canned text for the given content type and
// language, or the generic placeholder when no entry exists.
func MockContent(contentType, language string) string {
	if text, ok := mockContent[contentType][language]; ok {
		return text
	}
	return GenericMockContent
}
