package components

import "github.com/yohamta/donburi"

// LetterboxData identifies one of the two letterbox bars. ID 0 sits on the
// positive side of the padded axis, ID 1 on the negative side. The bar's
// rectangle lives in its Transform and is rewritten on every resize.
type LetterboxData struct {
	ID int
}

var Letterbox = donburi.NewComponentType[LetterboxData]()
