package report

// Interpretations returns the fixed commentary printed after the numbers.
// The text tracks the assignment write-up for the red-wine file; it is not
// derived from the loaded data.
func Interpretations() []string {
	return []string{
		interpSummary,
		interpCorrelation,
		interpSugarPH,
		interpAcidity,
		interpHistogram,
		interpBoxplots,
		interpConclusion,
	}
}

const interpSummary = `(1) Summary statistics:
- The mean shows the typical value for each attribute, for example the
  typical alcohol percentage across these red wines. Many later steps,
  such as centering or scaling, build on it.
- The standard deviation quantifies variability. It shows how much wines
  differ on attributes like residual sugar or sulfur dioxide; attributes
  with large spread may need scaling before modeling, while small spread
  points to consistent production.`

const interpCorrelation = `(2) Correlation findings:
- Alcohol correlates positively with quality: higher alcohol content tends
  to go with higher sensory scores.
- Volatile acidity correlates negatively with quality: acetic acid imparts
  vinegar-like notes that panelists penalize.
- Other attributes such as sulphates and fixed acidity show smaller
  correlations, so quality reflects multiple factors rather than a single
  dominant driver.
- Correlation summarizes linear association only; it does not imply
  causation.`

const interpSugarPH = `(3) Residual sugar vs pH:
- The scatter is diffuse with no strong linear trend. Wines with low and
  moderately high sugar levels can show similar pH, so sweetness does not
  directly dictate acidity in this dataset.`

const interpAcidity = `(4) Fixed acidity vs citric acid:
- A positive association is expected since citric acid contributes to total
  fixed acidity. Many samples still have low citric acid at moderate or
  high fixed acidity, so other acids such as tartaric play a substantial
  role; the trend is positive but not perfect.`

const interpHistogram = `(5) Quality histogram:
- Most wines cluster around mid-range scores (5-6); very low or very high
  scores are rare. This imbalance toward average wines matters for any
  later prediction work: evaluation metrics and resampling need to account
  for the majority class.`

const interpBoxplots = `(6) Boxplots (alcohol and pH):
- Alcohol by class: the median alcohol level rises from Bad through Good to
  Very Good. The interquartile ranges overlap somewhat, but the shift in
  medians supports alcohol as a useful discriminator of perceived quality.
- pH by class: medians and spreads are similar across classes; the heavy
  overlap makes pH a weaker discriminator.
- The class rule leaves quality == 4 unassigned, so those samples appear in
  the overall boxplots but not in the class-based ones.`

const interpConclusion = `(7) Conclusion:
- Alcohol content is the strongest positive indicator of quality; both the
  correlations and the class boxplots support this.
- Volatile acidity is negatively associated with quality.
- Remaining attributes show weaker, secondary relationships.
- The score distribution is imbalanced toward 5-6, which should inform
  evaluation and modeling choices in later work.`
