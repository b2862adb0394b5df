package layout

import "strings"

// The built-in reference layout strings, in the flat representation Parse
// understands once whitespace is stripped: QWERTY, Dvorak, Colemak and
// Workman for comparison against well-known layouts, Proto1 as an earlier
// iteration of the author's own design, and White as the author's current
// best layout and the default starting point for optimization.

const qwertyString = `
 ` + "`" + `1234567890-=
  qwertyuiop[]\
   asdfghjkl;'
    zxcvbnm,./
 ~!@#$%^&*()_+
  QWERTYUIOP{}|
   ASDFGHJKL:"
    ZXCVBNM<>?`

const dvorakString = `
` + "`" + `1234567890[]
  ',.pyfgcrl/=\
   aoeuidhtns-
    ;qjkxbmwvz
~!@#$%^&*(){}
  "<>PYFGCRL?+|
   AOEUIDHTNS_
    :QJKXBMWVZ`

const colemakString = `
` + "`" + `1234567890-=
  qwfpgjluy;[]\
   arstdhneio'
    zxcvbkm,./
~!@#$%^&*()_+
  QWFPGJLUY:{}|
   ARSTDHNEIO"
    ZXCVBKM<>?`

const workmanString = `
` + "`" + `1234567890-=
  qdrwbjfup;[]\
   ashtgyneoi'
    zxmcvkl,./
~!@#$%^&*()_+
  QDRWBJFUP:{}|
   ASHTGYNEOI"
    ZXMCVKL<>?`

const whiteString = `
#12345@$67890
  vyd,'_jmlu()=
   atheb-csnoi
    pkgwqxrf.z
` + "`" + `!<>/|~%\*[]^
  VYD;"&JMLU{}?
   ATHEB+CSNOI
    PKGWQXRF:Z`

const proto1String = `
|12345%~67890
  vyd,'+jmlu_(*
   atheb=csnoi
    pkgwqxrf.z
` + "`" + `^&/}<#@!:{]$
  VYD?">JMLU-;\
   ATHEB[CSNOI
    PKGWQXRF)Z`

// QWERTY returns the standard QWERTY layout.
func QWERTY() *Layout { return FromString(qwertyString) }

// Dvorak returns the Dvorak Simplified Keyboard layout.
func Dvorak() *Layout { return FromString(dvorakString) }

// Colemak returns the Colemak layout.
func Colemak() *Layout { return FromString(colemakString) }

// Workman returns the Workman layout.
func Workman() *Layout { return FromString(workmanString) }

// White returns the author's current best layout; it is also the fallback
// Load returns when no layout file is present.
func White() *Layout { return FromString(whiteString) }

// Proto1 returns an earlier prototype of the author's layout, kept for
// comparison.
func Proto1() *Layout { return FromString(proto1String) }

// Named returns a built-in layout by (case-insensitive) name, or nil if
// name is not recognized.
func Named(name string) *Layout {
	switch strings.ToLower(name) {
	case "qwerty":
		return QWERTY()
	case "dvorak":
		return Dvorak()
	case "colemak":
		return Colemak()
	case "workman":
		return Workman()
	case "white":
		return White()
	case "proto1":
		return Proto1()
	default:
		return nil
	}
}
