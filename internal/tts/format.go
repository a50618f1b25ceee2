package tts

import "strings"

// Format is an audio output format accepted by the synchronous endpoint.
type Format string

const (
	FormatMP3       Format = "mp3"
	FormatOggVorbis Format = "ogg_vorbis"
	FormatPCM       Format = "pcm"
)

var contentTypes = map[Format]string{
	FormatMP3:       "audio/mpeg",
	FormatOggVorbis: "audio/ogg",
	FormatPCM:       "audio/wave",
}

// ParseFormat maps any string to a supported format. Unknown values fall
// back to mp3.
func ParseFormat(s string) Format {
	f := Format(s)
	if _, ok := contentTypes[f]; ok {
		return f
	}
	return FormatMP3
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	if ct, ok := contentTypes[f]; ok {
		return ct
	}
	return contentTypes[FormatMP3]
}

// Text types understood by the provider.
const (
	TextTypePlain = "text"
	TextTypeSSML  = "ssml"
)

// DetectTextType returns the explicit type when it is valid, otherwise
// guesses from the text: documents wrapped in <speak> are SSML.
func DetectTextType(explicit, text string) string {
	switch explicit {
	case TextTypePlain, TextTypeSSML:
		return explicit
	}
	if strings.HasPrefix(strings.TrimSpace(text), "<speak>") {
		return TextTypeSSML
	}
	return TextTypePlain
}
