package internal

// Version is the honyaku release version, shown by --version.
const Version = "0.3.0"
