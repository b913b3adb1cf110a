package schema

// ServantPictureTable represents the 'servant_picture' table
type ServantPictureTable struct {
	Table     string
	ServantID string
	Grade     string
	Picture   string
}

// ServantPicture is the schema definition for servant_picture.
// One row per (servant, grade) slot; re-upload overwrites the path.
var ServantPicture = ServantPictureTable{
	Table:     "servant_picture",
	ServantID: "servant_id",
	Grade:     "grade",
	Picture:   "picture",
}
