package views

import "github.com/vendormac/vendormac/oui"

// Selection is a chosen survey record with the address generated for it,
// ready for the confirm screen.
type Selection struct {
	Interface  string
	CurrentMAC string
	Record     oui.SurveyRecord
	Address    string
}
