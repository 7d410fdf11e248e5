package mantoc

// ManualSection describes one section of the system manual.
type ManualSection struct {
	Number string
	Title  string
}

// ManualSections returns the standard sections of the manual, in order.
func ManualSections() []ManualSection {
	return []ManualSection{
		{Number: "1", Title: "General Commands Manual"},
		{Number: "2", Title: "System Calls Manual"},
		{Number: "3", Title: "Library Functions Manual"},
		{Number: "4", Title: "Kernel Interfaces Manual"},
		{Number: "5", Title: "File Formats Manual"},
		{Number: "6", Title: "Games Manual"},
		{Number: "7", Title: "Miscellaneous Information Manual"},
		{Number: "8", Title: "System Manager's Manual"},
		{Number: "9", Title: "Kernel Developer's Manual"},
	}
}
