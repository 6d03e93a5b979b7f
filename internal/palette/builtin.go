package palette

// DefaultID is the palette rendered when none is named.
const DefaultID = "charm"

// charmHex is a 14x8 bilinear blend between the four corner colors of the
// lipgloss layout demo: #f25d94 (top left), #edff82 (top right), #643aff
// (bottom left) and #14f9d5 (bottom right). Row-major, top row first.
var charmHex = []string{
	"f25d94", "f26993", "f17691", "f18290", "f08f8e", "f09b8d", "f0a88c", "efb48a", "efc189", "efcd88", "eeda86", "eee685", "edf383", "edff82",
	"de58a3", "dd65a1", "dc72a0", "da7e9e", "d98b9d", "d8989b", "d7a599", "d5b198", "d4be96", "d3cb94", "d2d893", "d0e491", "cff190", "cefe8e",
	"c953b3", "c760b1", "c56daf", "c37aad", "c187ab", "bf94a9", "bda1a7", "bbafa6", "b9bca4", "b7c9a2", "b5d6a0", "b3e39e", "b1f09c", "affd9a",
	"b54ec2", "b25bc0", "af69be", "ac76bc", "aa84b9", "a791b7", "a49eb5", "a1acb3", "9eb9b1", "9bc6af", "99d4ac", "96e1aa", "93efa8", "90fca6",
	"a149d1", "9d57cf", "9a65cc", "9672ca", "9280c7", "8f8ec5", "8b9cc2", "87a9c0", "83b7bd", "80c5bb", "7cd3b8", "78e0b6", "75eeb3", "71fcb1",
	"8d44e0", "8852dd", "8460db", "7f6ed8", "7b7cd5", "768ad3", "7298d0", "6da7cd", "69b5ca", "64c3c8", "60d1c5", "5bdfc2", "57edc0", "52fbbd",
	"783ff0", "734ded", "6d5cea", "686ae7", "6379e4", "5d87e1", "5895de", "53a4db", "4eb2d8", "48c0d5", "43cfd2", "3eddcf", "38eccc", "33fac9",
	"643aff", "5e49fc", "5857f9", "5266f5", "4b75f2", "4583ef", "3f92ec", "39a1e8", "33b0e5", "2dbee2", "26cddf", "20dcdb", "1aead8", "14f9d5",
}

// grayscaleHex is the xterm 256-color gray ramp (codes 232-255).
var grayscaleHex = []string{
	"080808", "121212", "1c1c1c", "262626", "303030", "3a3a3a", "444444", "4e4e4e",
	"585858", "626262", "6c6c6c", "767676", "808080", "8a8a8a", "949494", "9e9e9e",
	"a8a8a8", "b2b2b2", "bcbcbc", "c6c6c6", "d0d0d0", "dadada", "e4e4e4", "eeeeee",
}

func init() {
	Register(MustNew(DefaultID, "Charm", "charm lipgloss palette", 14, charmHex))
	Register(MustNew("grayscale", "Grayscale", "xterm gray ramp", 8, grayscaleHex))
}
