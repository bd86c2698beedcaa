package design

// Color constants for the logo
const (
	// LogoColorPrimary is the main red color for the wordmark
	LogoColorPrimary = "#DC143C"
	// LogoColorAccent is the gold/amber accent color
	LogoColorAccent = "#D4A84B"
)

// Logo is the main wordmark.
const Logo = `
 █████╗ ███████╗██╗  ██╗███████╗██╗  ██╗ █████╗ 
██╔══██╗██╔════╝██║  ██║██╔════╝██║  ██║██╔══██╗
███████║███████╗███████║███████╗███████║███████║
██╔══██║╚════██║██╔══██║╚════██║██╔══██║██╔══██║
██║  ██║███████║██║  ██║███████║██║  ██║██║  ██║
╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝`

// LogoBoxed is the full boxed version with tagline.
const LogoBoxed = `
╔════════════════════════════════════════════════════════╗
║     █████╗ ███████╗██╗  ██╗███████╗██╗  ██╗ █████╗     ║
║    ██╔══██╗██╔════╝██║  ██║██╔════╝██║  ██║██╔══██╗    ║
║    ███████║███████╗███████║███████╗███████║███████║    ║
║    ██╔══██║╚════██║██╔══██║╚════██║██╔══██║██╔══██║    ║
║    ██║  ██║███████║██║  ██║███████║██║  ██║██║  ██║    ║
║    ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝    ║
╠════════════════════════════════════════════════════════╣
║              DETERMINISTIC TEXT TO COLOR               ║
╚════════════════════════════════════════════════════════╝`

// LogoMinimal is a single-line version for very tight spaces.
const LogoMinimal = `ASHSHA`
