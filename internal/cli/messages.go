package cli

// Notices shown to the user.
const (
	msgNoActiveFile       = "No active file"
	msgNoWord             = "No word is selected"
	msgNoData             = "No data returned"
	msgNoMeaning          = "No meaning returned"
	msgNoDefinition       = "No definition returned"
	msgLookupFailed       = "Lookup failed"
	msgFailedToAddDreams  = "Failed to add dreams"
	msgNoNotesToMove      = "No notes to move"
	msgNotesMoved         = "%d notes moved"
	msgNoDailyNoteFolder  = "No daily note folder"
	msgDreamsCopied       = "Dreams copied to %s"
	msgNoDreamsToCopy     = "No new dreams to copy"
	msgDefinition         = "%s: %s"
	msgClipboardFailed    = "Could not copy to clipboard"
	msgPlanItem           = "%s -> %s"
	msgPlanItemWithDreams = "%s -> %s (dreams -> %s)"
	msgPlanItemSkipped    = "%s: skipped (%v)"
)
