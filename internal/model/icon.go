package model

// Icon identifies a display icon preset for a node. The numbering is
// stable and persisted, so existing values must not be reordered.
type Icon int

const (
	IconNone Icon = iota
	IconFolder
	IconKey
	IconCard
	IconNote
	IconIdentity
	IconDocument
	IconCertificate
	IconBank
	IconDatabase
	IconMembership
	IconPassport
	IconStar
	IconWireless
	IconServer
	IconTerminal
	IconHealth
	IconKeyPair
	IconWallet
	IconTrash
)
