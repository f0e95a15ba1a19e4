/* Package main: goforth -- a small stack language in the FORTH family

Programs are whitespace separated words operating on a stack of 4-byte cells.
A cell is untyped: the numeric mode (decimal, hex, fractional or char) decides
how literals are read, how arithmetic interprets cells, and how "." prints
them. Truth is inverted: 0 is true and -1 is false.

Words

	dup drop swap over rot tuck pick roll    stack manipulation
	+ - * / mod                              arithmetic, "a b -" is a-b
	> < >= <= = !=                           comparison, "a b <" is a<b
	and or not                               logic over 0/-1
	. cr ." text"                            output
	decimal hex fractional char              numeric modes
	variable value constant to               named memory cells
	! @ cell here allot                      memory access
	viewdefinitions viewobjects help         introspection

Definitions

	: name body ;      define a new word; the body may refer to name itself
	:: name body ;     define, replace or shadow any word

Control flow, usable anywhere

	flag if then-part else else-part endif
	from to step loop body endloop
	repeat body flag until

A loop body sees ( to current step ) on the stack, so "over" reads the current
count, and must leave three cells in that order for the next iteration; repeat
continues while the body leaves false.

In fractional mode comparisons leave 0.0 or -1.0, but if and until always test
the integer encoding. A float 0.0 is still true, while a float -1.0 is not the
integer false, so a repeat loop driven by a fractional comparison ends after
its first pass.

Comments are enclosed in ( ), char literals in quotes like 'a' or '\n', and a
line ending in \ continues on the next line.

Memory is a fixed arena of cells; each variable, value and constant takes the
next cell, and allot moves the free pointer by a signed byte count.
*/
package main
