package model

// BatimentInfo is the public map projection of a building.  Latitude and
// longitude are nullable: buildings that were never geolocated carry nil
// coordinates and are excluded from spatial operations.
//
// Fields:
//  Code      – natural-key building code.
//  Latitude  – decimal degrees, nil when not geolocated.
//  Longitude – decimal degrees, nil when not geolocated.
//  Campus    – name of the campus the building belongs to.
type BatimentInfo struct {
	Code      string   `json:"code"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Campus    string   `json:"campus"`
}

// Geolocated reports whether the building carries usable coordinates.
func (b BatimentInfo) Geolocated() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// CampusRef is the short campus embedding used inside admin projections.
type CampusRef struct {
	NomC  string `json:"nomC"`
	Ville string `json:"ville"`
}

// BatimentRef is the short building embedding used inside admin projections.
type BatimentRef struct {
	CodeB string `json:"codeB"`
}

// ComposanteRef is the short component embedding used inside admin projections.
type ComposanteRef struct {
	Acronyme string `json:"acronyme"`
}

// UniversiteRef is the short university embedding used inside admin projections.
type UniversiteRef struct {
	Nom string `json:"nom"`
}

// Batiment is the privileged full-field projection of a building.
type Batiment struct {
	CodeB       string          `json:"codeB"`     // natural-key building code
	AnneeC      int             `json:"anneeC"`    // construction year
	Latitude    *float64        `json:"latitude"`  // nil when not geolocated
	Longitude   *float64        `json:"longitude"` // nil when not geolocated
	Campus      *CampusRef      `json:"campus"`
	Composantes []ComposanteRef `json:"composanteList"`
}

// BatimentRequest is the payload for creating or updating a building.
type BatimentRequest struct {
	CodeB      string   `json:"codeB"`
	AnneeC     int      `json:"anneeC"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	CampusNomC string   `json:"campusNomC"`
}

// Campus is the privileged full-field projection of a campus.
type Campus struct {
	NomC       string         `json:"nomC"`
	Ville      string         `json:"ville"`
	Universite *UniversiteRef `json:"universite"`
}

// CampusRequest is the payload for creating or updating a campus.
type CampusRequest struct {
	NomC          string `json:"nomC"`
	Ville         string `json:"ville"`
	UniversiteNom string `json:"universiteNom"`
}

// SalleInfo is the public room projection used for booking autocomplete.
type SalleInfo struct {
	NumS         string `json:"numS"`
	Capacite     int    `json:"capacite"`
	TypeS        string `json:"typeS"`
	BatimentCode string `json:"batimentCodeB"`
}

// Salle is the privileged full-field projection of a room.
type Salle struct {
	NumS     string       `json:"numS"`     // natural-key room number
	Capacite int          `json:"capacite"` // seats
	TypeS    string       `json:"typeS"`    // room type enumeration name
	Acces    string       `json:"acces"`    // accessibility notes
	Etage    string       `json:"etage"`    // floor
	Batiment *BatimentRef `json:"batiment"`
}

// SalleRequest is the payload for creating or updating a room.
type SalleRequest struct {
	NumS          string `json:"numS"`
	Capacite      int    `json:"capacite"`
	TypeS         string `json:"typeS"`
	Acces         string `json:"acces"`
	Etage         string `json:"etage"`
	BatimentCodeB string `json:"batimentCodeB"`
}

// ComposanteInfo is the public projection of a university component.
type ComposanteInfo struct {
	Acronyme string `json:"acronyme"`
	Nom      string `json:"nom"`
}

// Composante is the privileged full-field projection of a component.
type Composante struct {
	Acronyme    string        `json:"acronyme"`
	Nom         string        `json:"nom"`
	Responsable string        `json:"responsable"`
	Batiments   []BatimentRef `json:"batimentList"`
}

// ComposanteRequest is the payload for creating or updating a component.
type ComposanteRequest struct {
	Acronyme      string   `json:"acronyme"`
	Nom           string   `json:"nom"`
	Responsable   string   `json:"responsable"`
	BatimentCodes []string `json:"batimentCodes"`
}

// Universite is the privileged full-field projection of a university.
type Universite struct {
	Nom        string `json:"nom"`
	Acronyme   string `json:"acronyme"`
	Creation   int    `json:"creation"`
	Presidence string `json:"presidence"`
}

// UniversiteRequest is the payload for creating or updating a university.
type UniversiteRequest struct {
	Nom        string `json:"nom"`
	Acronyme   string `json:"acronyme"`
	Creation   int    `json:"creation"`
	Presidence string `json:"presidence"`
}
