package common

// GetWorkspaceFromArgs extracts the workspace name from request arguments.
// Falls back to "default" when the argument is missing or empty, so every
// tool resolves to a concrete workspace without repeating this logic.
func GetWorkspaceFromArgs(args map[string]interface{}) string {
	if workspace, ok := args["workspace"].(string); ok && workspace != "" {
		return workspace
	}
	return "default"
}
