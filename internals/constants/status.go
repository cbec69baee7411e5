package constants

type ApplicationStatus string

const (
	ApplicationSent     ApplicationStatus = "SENT"
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationReceived ApplicationStatus = "RECEIVED"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

const ApplicationStatusOneOf = "SENT PENDING RECEIVED APPROVED REJECTED"

type MessageStatus string

const (
	MessageSent      MessageStatus = "SENT"
	MessageDelivered MessageStatus = "DELIVERED"
	MessageRead      MessageStatus = "READ"
)

const MessageStatusOneOf = "SENT DELIVERED READ"

type ChatSender string

const (
	SenderTeacher ChatSender = "teacher"
	SenderAdmin   ChatSender = "admin"
)
