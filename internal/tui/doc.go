// Package tui provides the terminal user interface of bevctl.
//
// The catalog view follows a Model-View-Controller split built on Bubble Tea:
//
//   - Model (internal/tui/model/): the catalog lists, the detail panel state
//     (ViewState), the edit and add forms, and the commands that call the
//     backend.
//   - View (internal/tui/view/): a pure Render function drawing the header,
//     the error region, the bottle and crate lists, the detail panel, the add
//     form, the status bar and the help/log overlays.
//   - Controller (internal/tui/controller/): routes key presses and backend
//     results to model transitions and wires the Bubble Tea program.
//
// Every save, delete and add is followed by a full reload of the catalog; the
// lists are never patched locally.
package tui
