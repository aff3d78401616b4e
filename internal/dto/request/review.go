package request

// ReviewRequest is used for both create and update; an update replaces rating
// and comment.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}
