package domain

import "strings"

// CommandRecord is a stored trigger/response pair for one conversation.
type CommandRecord struct {
	Command  string `json:"comando"`
	Response string `json:"resposta"`
}

// ConversationFileID derives the command file name for a conversation by
// stripping the group and direct-chat suffixes.
func ConversationFileID(conversationID string) string {
	id := strings.TrimSuffix(conversationID, GroupSuffix)
	return strings.Replace(id, UserSuffix, "", 1)
}
