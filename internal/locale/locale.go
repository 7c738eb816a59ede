// Package locale provides the localized strings shown inside inline error
// fragments. Messages are registered in a golang.org/x/text catalog and
// resolved with language matching, falling back to English.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for the inline error fragment, one per reason code.
const (
	KeyInvalidToken  = "embedfilter.invalidtoken"
	KeyNoGuests      = "embedfilter.noguests"
	KeyInvalidMarker = "embedfilter.invalidmarker"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Spanish,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(supported)

func init() {
	set := func(tag language.Tag, key, msg string) {
		if err := message.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}

	set(language.English, KeyInvalidToken, "This question cannot be embedded here: the embed code is not authorised.")
	set(language.English, KeyNoGuests, "Guests cannot interact with embedded questions. Please log in.")
	set(language.English, KeyInvalidMarker, "This embed code is not valid.")

	set(language.Spanish, KeyInvalidToken, "Esta pregunta no se puede incrustar aquí: el código de incrustación no está autorizado.")
	set(language.Spanish, KeyNoGuests, "Los invitados no pueden interactuar con preguntas incrustadas. Inicie sesión.")
	set(language.Spanish, KeyInvalidMarker, "Este código de incrustación no es válido.")

	set(language.French, KeyInvalidToken, "Cette question ne peut pas être intégrée ici : le code d'intégration n'est pas autorisé.")
	set(language.French, KeyNoGuests, "Les invités ne peuvent pas interagir avec les questions intégrées. Veuillez vous connecter.")
	set(language.French, KeyInvalidMarker, "Ce code d'intégration n'est pas valide.")

	set(language.German, KeyInvalidToken, "Diese Frage kann hier nicht eingebettet werden: der Einbettungscode ist nicht autorisiert.")
	set(language.German, KeyNoGuests, "Gäste können nicht mit eingebetteten Fragen arbeiten. Bitte melden Sie sich an.")
	set(language.German, KeyInvalidMarker, "Dieser Einbettungscode ist ungültig.")
}

// Lookup resolves key for the closest supported language to tag.
func Lookup(tag language.Tag, key string) string {
	matched, _, _ := matcher.Match(tag)
	return message.NewPrinter(matched).Sprintf(key)
}
