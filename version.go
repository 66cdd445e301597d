package sortscope

// Version is the current release of sortscope.
var Version = "0.4.0"
