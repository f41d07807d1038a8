package ui

// SymbolFail prefixes every failure line printed to the user.
const SymbolFail = "✗"
