// Package script hosts user-defined motions written in Lua.
//
// A script registers motions through the global selkie table:
//
//	selkie.register("goto-brace", function(line, char, count, lines)
//	    -- lines(i) returns the 0-indexed line i, or nil past the end
//	    return line, char + count
//	end)
//
// Registered motions receive the cursor position (0-indexed line and
// character), the count prefix, and a line accessor. They return the
// target line and character; results are clamped to the document, so a
// script cannot produce an out-of-range position.
//
// The Lua state is sandboxed: io, os, and the file loaders are
// removed. Scripts compute positions, nothing else.
package script
