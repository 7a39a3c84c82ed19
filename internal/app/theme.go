package app

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle              = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerDateStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle                = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle              = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	notebookStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	notebookActiveStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	selectedStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	dividerStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	panelTitleStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	cardStyle                = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	cardSelectedStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("117")).Padding(0, 1)
	cardTitleStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	cardMetaStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true)
	emptyNotesStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	menuDropStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	contextMenuHeaderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true)
	confirmDialogBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208"))
	modalBorderStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	modalErrorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	toastInfoStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
