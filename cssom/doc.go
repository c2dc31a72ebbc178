/*
Package cssom decouples rule trees from concrete CSS object models.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Once all
SCSS-specific constructs of a rule tree (like "@extend") have been resolved,
the rule tree is handed to a CSS implementation for output or styling.
There is not very much open source Go code around for this, therefore CSS
handling is de-coupled by introducing the interfaces StyleSheet and Rule.
Concrete implementations may be found in sub-packages (e.g., douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
