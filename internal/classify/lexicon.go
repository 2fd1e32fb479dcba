package classify

import "github.com/kamik423/quadrant/internal/model"

// LexiconVersion identifies the active token table. Bump when entries
// change so plots from different lexicons are not compared blindly.
const LexiconVersion = "v1"

// Contribution is the per-axis delta one token adds to an item's raw
// score before squashing. X runs economic left (-) to right (+), Y runs
// libertarian (-) to authoritarian (+).
type Contribution struct {
	X float64
	Y float64
}

// Lexicon maps normalized tokens to axis contributions. It is data, not
// logic: the classifier only sums matches, so the table can be audited
// and tested on its own.
var Lexicon = map[string]Contribution{
	// economic left
	"socialism":      {X: -0.8},
	"socialist":      {X: -0.7},
	"communism":      {X: -0.9},
	"communist":      {X: -0.8},
	"union":          {X: -0.4},
	"unions":         {X: -0.4},
	"welfare":        {X: -0.4},
	"redistribution": {X: -0.6},
	"nationalize":    {X: -0.6},
	"proletariat":    {X: -0.7},
	"comrade":        {X: -0.5},
	"landlords":      {X: -0.3},
	"billionaires":   {X: -0.4},
	"healthcare":     {X: -0.3},
	"solidarity":     {X: -0.4},

	// economic right
	"capitalism":   {X: 0.6},
	"capitalist":   {X: 0.5},
	"market":       {X: 0.3},
	"markets":      {X: 0.4},
	"deregulation": {X: 0.6},
	"privatize":    {X: 0.6},
	"entrepreneur": {X: 0.4},
	"profits":      {X: 0.3},
	"taxation":     {X: 0.4},
	"tariffs":      {X: 0.3},
	"shareholders": {X: 0.4},
	"meritocracy":  {X: 0.4},
	"stocks":       {X: 0.2},
	"crypto":       {X: 0.3},
	"deficit":      {X: 0.2},

	// authoritarian
	"order":      {Y: 0.3},
	"obey":       {Y: 0.5},
	"mandate":    {Y: 0.4},
	"mandatory":  {Y: 0.4},
	"ban":        {Y: 0.4},
	"banned":     {Y: 0.4},
	"censorship": {Y: 0.3},
	"police":     {Y: 0.3},
	"military":   {Y: 0.3},
	"borders":    {Y: 0.4},
	"tradition":  {Y: 0.3},
	"nation":     {Y: 0.3},
	"patriot":    {Y: 0.4},
	"discipline": {Y: 0.4},
	"monarchy":   {Y: 0.6},

	// libertarian
	"freedom":       {Y: -0.4},
	"liberty":       {Y: -0.5},
	"rights":        {Y: -0.3},
	"consent":       {Y: -0.4},
	"decriminalize": {Y: -0.5},
	"legalize":      {Y: -0.4},
	"voluntary":     {Y: -0.4},
	"privacy":       {Y: -0.3},
	"autonomy":      {Y: -0.4},
	"weed":          {Y: -0.3},
	"guns":          {X: 0.2, Y: -0.3},
	"anarchy":       {Y: -0.6},
	"anarchist":     {X: -0.3, Y: -0.6},
	"statist":       {Y: -0.3}, // used pejoratively by lib posters
	"authoritarian": {Y: -0.2}, // likewise: naming it signals distance from it
}

// Flair anchor magnitude. Quadrant flairs land at (±0.75, ±0.75), axis
// flairs at ±0.75 on one axis.
const anchor = 0.75

// flairAnchors maps canonical flair names to fixed grid positions.
// Aliases cover the flair template ids the communities actually use.
var flairAnchors = map[string]model.Point{
	"centrist":  {X: 0, Y: 0},
	"centg":     {X: 0, Y: 0},
	"auth":      {X: 0, Y: anchor},
	"authleft":  {X: -anchor, Y: anchor},
	"left":      {X: -anchor, Y: 0},
	"libleft":   {X: -anchor, Y: -anchor},
	"lib":       {X: 0, Y: -anchor},
	"libright":  {X: anchor, Y: -anchor},
	"libright2": {X: anchor, Y: -anchor},
	"right":     {X: anchor, Y: 0},
	"authright": {X: anchor, Y: anchor},
}
