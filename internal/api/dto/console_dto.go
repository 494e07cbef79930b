package dto

// CreateUserRequest payload for createUser.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRoleRequest payload for updateUserRole.
type UpdateUserRoleRequest struct {
	UID  string `json:"uid"`
	Role string `json:"role"`
}

// DeleteUserRequest payload for deleteUser.
type DeleteUserRequest struct {
	UID string `json:"uid"`
}

// CreateArticleRequest payload for createArticle.
type CreateArticleRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpdateArticleRequest payload for updateArticle.
type UpdateArticleRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status"`
}

// DeleteArticleRequest payload for deleteArticle.
type DeleteArticleRequest struct {
	ID string `json:"id"`
}

// CreateFeatureFlagRequest payload for createFeatureFlag.
type CreateFeatureFlagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToggleFeatureFlagRequest payload for toggleFeatureFlag. Enabled is a
// pointer so a missing field is distinguishable from false.
type ToggleFeatureFlagRequest struct {
	ID      string `json:"id"`
	Enabled *bool  `json:"enabled"`
}

// CreateBugReportRequest payload for createBugReport.
type CreateBugReportRequest struct {
	Description      string `json:"description"`
	StepsToReproduce string `json:"stepsToReproduce"`
}

// LoginRequest payload for the token-minting boundary endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResultResponse is the uniform success envelope.
type ResultResponse struct {
	Result string `json:"result"`
}
